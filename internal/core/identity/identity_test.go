package identity

import "testing"

func TestActorEmpty(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"missing id", Actor{Email: "x@y.com"}, true},
		{"zero uuid sentinel", Actor{UserID: "00000000-0000-0000-0000-000000000000"}, true},
		{"real uuid", Actor{UserID: "7f8c3a44-9f2b-4a57-9e71-2f61f0e0a111"}, false},
		{"opaque non-uuid id", Actor{UserID: "user-42"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.actor.Empty(); got != c.want {
				t.Fatalf("Empty() = %v, want %v", got, c.want)
			}
		})
	}
}
