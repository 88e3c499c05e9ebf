package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{name: "Pretty format", format: "pretty", expectErr: false},
		{name: "CSV format", format: "csv", expectErr: false},
		{name: "PDF format", format: "pdf", expectErr: false},
		{name: "Unknown format", format: "xml", expectErr: true},
		{name: "Empty format", format: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %t", tt.format, err, tt.expectErr)
			}
		})
	}
}
