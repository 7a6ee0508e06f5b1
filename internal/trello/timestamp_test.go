package trello

import (
	"errors"
	"testing"
	"time"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

func TestCreationTime(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "documented board id",
			id:   "4d5ea62fd76aaxxxxxxxx",
			want: time.Date(2011, 2, 18, 17, 31, 11, 0, time.UTC),
		},
		{
			name: "exactly eight characters",
			id:   "4d5ea62f",
			want: time.Date(2011, 2, 18, 17, 31, 11, 0, time.UTC),
		},
		{
			name: "suffix does not affect the result",
			id:   "4d5ea62f000000000000000zzz",
			want: time.Date(2011, 2, 18, 17, 31, 11, 0, time.UTC),
		},
		{
			name: "uppercase hex accepted",
			id:   "4D5EA62Fd76aa1136000000c",
			want: time.Date(2011, 2, 18, 17, 31, 11, 0, time.UTC),
		},
		{
			name: "zero timestamp is the epoch",
			id:   "00000000abcdef",
			want: time.Unix(0, 0).UTC(),
		},
		{
			name:    "empty identifier",
			id:      "",
			wantErr: true,
		},
		{
			name:    "seven characters",
			id:      "4d5ea62",
			wantErr: true,
		},
		{
			name:    "non-hex prefix",
			id:      "4d5ea62zd76aa1136000000c",
			wantErr: true,
		},
		{
			name:    "all non-hex",
			id:      "zzzzzzzzzzzzzzzz",
			wantErr: true,
		},
		{
			name:    "sign is not hex",
			id:      "-d5ea62fd76aa",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreationTime(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreationTime(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, trelloerrors.ErrMalformedID) {
					t.Errorf("CreationTime(%q) error = %v, want ErrMalformedID in chain", tt.id, err)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("CreationTime(%q) = %v, want %v", tt.id, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("CreationTime(%q) location = %v, want UTC", tt.id, got.Location())
			}
		})
	}
}

func TestCreationTimeIsDeterministic(t *testing.T) {
	first, err := CreationTime("5e1fb5af9cc580ea2b000010")
	if err != nil {
		t.Fatalf("CreationTime returned error: %v", err)
	}
	second, err := CreationTime("5e1fb5af9cc580ea2b000010")
	if err != nil {
		t.Fatalf("CreationTime returned error: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("repeated decode differs: %v vs %v", first, second)
	}
}
