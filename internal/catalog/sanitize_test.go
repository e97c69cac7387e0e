package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Hoodie  ", want: "Hoodie"},
		{in: "<b>Bold</b> text", want: "Bold text"},
		{in: "a\n\tb   c", want: "a b c"},
		{in: "x<script>alert(1)</script>y", want: "xy"},
		{in: "bad\xffbyte", want: "badbyte"},
		{in: "Tom & Jerry's \"Cap\"", want: "Tom & Jerry's \"Cap\""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeText(tt.in), tt.in)
	}
}

func TestSanitizeText_NestedTags(t *testing.T) {
	got := SanitizeText("<scr<script></script>ipt>alert(1)</script>")

	assert.NotContains(t, got, "<script")
	assert.NotContains(t, got, "</script")
}

func TestSanitizeKey(t *testing.T) {
	assert.Equal(t, "color", SanitizeKey("Color"))
	assert.Equal(t, "pa_size-2", SanitizeKey("pa_Size-2 "))
	assert.Equal(t, "", SanitizeKey("!!!"))
}

func TestSanitizeHTML(t *testing.T) {
	in := " <p>Soft <em>cotton</em></p><script>steal()</script><IFRAME src=x></IFRAME> "

	assert.Equal(t, "<p>Soft <em>cotton</em></p>", SanitizeHTML(in))
}

func TestSanitizeHTML_Unsafe(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		banned []string
	}{
		{
			name:   "nested script tag",
			in:     "<scr<script></script>ipt>alert(1)</script>",
			banned: []string{"<script", "</script"},
		},
		{
			name:   "event handler attribute",
			in:     `<img src="x" onerror="alert(1)"><p onclick="steal()">Hi</p>`,
			banned: []string{"onerror", "onclick"},
		},
		{
			name:   "javascript link",
			in:     `<a href="javascript:alert(1)">click</a>`,
			banned: []string{"javascript:"},
		},
		{
			name:   "unclosed script",
			in:     "<p>ok</p><script>alert(1)",
			banned: []string{"<script", "alert(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeHTML(tt.in)
			for _, b := range tt.banned {
				assert.NotContains(t, got, b)
			}
		})
	}
}
