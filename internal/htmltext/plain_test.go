package htmltext

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text passes through",
			in:   "Just a   story\nwith lines",
			want: "Just a story with lines",
		},
		{
			name: "paragraphs",
			in:   "<p>First paragraph.</p><p>Second <b>bold</b> one.</p>",
			want: "First paragraph.\n\nSecond bold one.",
		},
		{
			name: "line breaks",
			in:   "<p>line one<br>line two</p>",
			want: "line one\nline two",
		},
		{
			name: "list items",
			in:   "<ul><li>alpha</li><li>beta</li></ul>",
			want: "• alpha\n\n• beta",
		},
		{
			name: "scripts and styles dropped",
			in:   "<style>p{color:red}</style><p>visible</p><script>alert(1)</script>",
			want: "visible",
		},
		{
			name: "entities decoded",
			in:   "<p>Tom &amp; Jerry</p>",
			want: "Tom & Jerry",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlainText(tt.in)
			assert.NilError(t, err)
			assert.Equal(t, got, tt.want)
		})
	}
}
