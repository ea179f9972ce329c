package auth

import "testing"

func TestSafeCallbackURL(t *testing.T) {
	testCases := []struct {
		name   string
		target string
		want   string
	}{
		{name: "empty", target: "", want: "/dashboard"},
		{name: "relative path", target: "/dashboard/blogs", want: "/dashboard/blogs"},
		{name: "path with query", target: "/dashboard/blogs?page=2", want: "/dashboard/blogs?page=2"},
		{name: "absolute url", target: "https://evil.example.com/", want: "/dashboard"},
		{name: "scheme relative", target: "//evil.example.com", want: "/dashboard"},
		{name: "backslash", target: `/\evil.example.com`, want: "/dashboard"},
		{name: "no leading slash", target: "dashboard", want: "/dashboard"},
		{name: "javascript scheme", target: "javascript:alert(1)", want: "/dashboard"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := SafeCallbackURL(testCase.target, "/dashboard"); got != testCase.want {
				t.Fatalf("SafeCallbackURL(%q) = %q, want %q", testCase.target, got, testCase.want)
			}
		})
	}
}
