package validate_test

import (
	"testing"

	"github.com/kimnamhyeong01/bookstore-service/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	t.Parallel()
	type req struct {
		ISBN string `validate:"required,isbn"`
		Time string `validate:"required,clock"`
		Date string `validate:"required,day"`
	}
	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok isbn13", in: req{ISBN: "978-0-13-468599-1", Time: "10:00", Date: "2024-05-01"}},
		{name: "ok isbn10 with X", in: req{ISBN: "080442957X", Time: "10:00:30", Date: "2024-05-01"}},
		{name: "bad isbn", in: req{ISBN: "12345", Time: "10:00", Date: "2024-05-01"}, wantErr: true},
		{name: "bad time", in: req{ISBN: "9780134685991", Time: "25:00", Date: "2024-05-01"}, wantErr: true},
		{name: "bad date", in: req{ISBN: "9780134685991", Time: "10:00", Date: "01.05.2024"}, wantErr: true},
		{name: "missing", in: req{}, wantErr: true},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
