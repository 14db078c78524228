package sprite

import (
	"reflect"
	"testing"
)

func TestHostname(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain https", url: "https://example.com", want: "example.com"},
		{name: "with path", url: "https://example.com/some/page", want: "example.com"},
		{name: "with port", url: "https://example.com:8443/x", want: "example.com"},
		{name: "upper case host", url: "https://EXAMPLE.COM", want: "example.com"},
		{name: "www host", url: "https://www.example.com", want: "www.example.com"},
		{name: "surrounding space", url: "  https://example.com  ", want: "example.com"},
		{name: "no scheme", url: "example.com", want: ""},
		{name: "garbage", url: "://nope", want: ""},
		{name: "empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hostname(tt.url); got != tt.want {
				t.Errorf("Hostname(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestStripWWW(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "www.example.com", want: "example.com"},
		{host: "example.com", want: "example.com"},
		{host: "www.www.example.com", want: "www.example.com"},
		{host: "wwwexample.com", want: "wwwexample.com"},
		{host: "", want: ""},
	}

	for _, tt := range tests {
		if got := StripWWW(tt.host); got != tt.want {
			t.Errorf("StripWWW(%q) = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestLookupKeys(t *testing.T) {
	tests := []struct {
		name string
		host string
		want []string
	}{
		{name: "www host offers stripped form", host: "www.example.com", want: []string{"www.example.com", "example.com"}},
		{name: "bare host offers www form", host: "example.com", want: []string{"example.com", "www.example.com"}},
		{name: "empty host", host: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupKeys(tt.host); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lookupKeys(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestHostnameSet(t *testing.T) {
	urls := []string{
		"https://b.example",
		"https://a.example/page",
		"https://b.example/other", // duplicate host
		"not a url",
		"",
	}

	got := HostnameSet(urls)
	want := []string{"a.example", "b.example"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HostnameSet() = %v, want %v", got, want)
	}
}
