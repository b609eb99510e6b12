package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fugo-app/nictags/internal/nictag"
)

func TestLenient_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  nictag.Table
	}{
		{
			name:  "empty file",
			input: "",
			want:  nictag.Table{},
		},
		{
			name: "mixed keys",
			input: "# comment\n" +
				"hostname=foo\n" +
				"admin_nic=aa:bb:cc:dd:ee:01\n" +
				"external_nic=aa:bb:cc:dd:ee:02\n" +
				"dns_resolvers=8.8.8.8\n",
			want: nictag.Table{
				"admin_nic":    nictag.New("admin_nic", "aa:bb:cc:dd:ee:01"),
				"external_nic": nictag.New("external_nic", "aa:bb:cc:dd:ee:02"),
			},
		},
		{
			name:  "value contains separator",
			input: "weird_nic=key=value=pair\n",
			want: nictag.Table{
				"weird_nic": nictag.New("weird_nic", "key=value=pair"),
			},
		},
		{
			name:  "blank and whitespace lines",
			input: "\n   \n\t\nadmin_nic=aa:bb:cc:dd:ee:01\n\n",
			want: nictag.Table{
				"admin_nic": nictag.New("admin_nic", "aa:bb:cc:dd:ee:01"),
			},
		},
		{
			name:  "comment without separator",
			input: "#no separator here\nadmin_nic=aa:bb:cc:dd:ee:01\n",
			want: nictag.Table{
				"admin_nic": nictag.New("admin_nic", "aa:bb:cc:dd:ee:01"),
			},
		},
		{
			name:  "suffix is case sensitive",
			input: "admin_NIC=aa:bb:cc:dd:ee:01\nnic_admin=aa:bb:cc:dd:ee:02\n",
			want:  nictag.Table{},
		},
		{
			name:  "duplicate key keeps last",
			input: "admin_nic=aa:bb:cc:dd:ee:01\nadmin_nic=aa:bb:cc:dd:ee:02\n",
			want: nictag.Table{
				"admin_nic": nictag.New("admin_nic", "aa:bb:cc:dd:ee:02"),
			},
		},
		{
			name:  "whitespace is preserved",
			input: "admin_nic= aa:bb:cc:dd:ee:01 \n",
			want: nictag.Table{
				"admin_nic": nictag.New("admin_nic", " aa:bb:cc:dd:ee:01 "),
			},
		},
		{
			name:  "bare suffix",
			input: "_nic=\n",
			want: nictag.Table{
				"_nic": nictag.New("_nic", ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lenient{}.Parse("usb-portal.txt", strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLenient_ParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		text  string
	}{
		{
			name:  "missing separator",
			input: "bogus_line_no_equals\n",
			line:  1,
			text:  "bogus_line_no_equals",
		},
		{
			name:  "missing separator after comments",
			input: "# comment\n\nhostname=foo\nbogus\n",
			line:  4,
			text:  "bogus",
		},
		{
			name:  "indented comment is not a comment",
			input: "  # comment\n",
			line:  1,
			text:  "  # comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lenient{}.Parse("usb-datadyne.txt", strings.NewReader(tt.input))
			require.Error(t, err)
			require.Nil(t, got)

			var lineErr *InvalidLineError
			require.True(t, errors.As(err, &lineErr))
			require.Equal(t, "usb-datadyne.txt", lineErr.File)
			require.Equal(t, tt.line, lineErr.Line)
			require.Equal(t, tt.text, lineErr.Text)
			require.Empty(t, lineErr.Hint)
		})
	}
}
