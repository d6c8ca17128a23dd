package phone_test

import (
	"testing"

	"go-jetlab-backend/pkg/phone"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ten digits", "5551234567", "+1 (555) 123-4567"},
		{"eleven digits with country code", "15551234567", "+1 (555) 123-4567"},
		{"ten digits with separators", "(555) 123-4567", "+1 (555) 123-4567"},
		{"eleven digits with plus", "+1 555 123 4567", "+1 (555) 123-4567"},
		{"non-US number passes through", "+44 20 7946 0958", "+44 20 7946 0958"},
		{"too short passes through", "12345", "12345"},
		{"eleven digits not starting with 1 passes through", "25551234567", "25551234567"},
		{"number with extension passes through", "555-123-4567 ext. 89", "555-123-4567 ext. 89"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, phone.Format(tc.in))
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"5551234567",
		"15551234567",
		"+1 (555) 123-4567",
		"+44 20 7946 0958",
		"555-123-4567 ext. 89",
	}

	for _, in := range inputs {
		once := phone.Format(in)
		assert.Equal(t, once, phone.Format(once), "re-formatting %q must be stable", in)
	}
}
