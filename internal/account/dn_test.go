package account

import "testing"

func TestDNBuilder(t *testing.T) {
	classifier := NewClassifier("_", "gst")
	builder := NewDNBuilder(classifier,
		",ou=students,dc=example,dc=edu",
		",ou=guests,dc=example,dc=edu",
		",ou=people,dc=example,dc=edu")

	tests := []struct {
		name     string
		username string
		want     string
	}{
		{
			name:     "student placement",
			username: "alice_stu",
			want:     "uid=alice_stu,ou=students,dc=example,dc=edu",
		},
		{
			name:     "guest placement",
			username: "gst1234",
			want:     "uid=gst1234,ou=guests,dc=example,dc=edu",
		},
		{
			name:     "employee placement",
			username: "jdoe",
			want:     "uid=jdoe,ou=people,dc=example,dc=edu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := builder.Build(tt.username); got != tt.want {
				t.Errorf("Build(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}
