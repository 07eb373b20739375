package account

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		studentPattern string
		guestPattern   string
		username       string
		want           Type
	}{
		{
			name:           "student pattern substring",
			studentPattern: "_",
			guestPattern:   "gst",
			username:       "alice_stu",
			want:           TypeStudent,
		},
		{
			name:           "guest pattern equals username minus serial",
			studentPattern: "_",
			guestPattern:   "gst",
			username:       "gst1234",
			want:           TypeGuest,
		},
		{
			name:           "employee fallback",
			studentPattern: "_",
			guestPattern:   "gst",
			username:       "jdoe",
			want:           TypeEmployee,
		},
		{
			name:           "student check precedes guest check",
			studentPattern: "gst",
			guestPattern:   "gst",
			username:       "gst1234",
			want:           TypeStudent,
		},
		{
			name:           "guest with extra digits is not a guest",
			studentPattern: "_",
			guestPattern:   "gst",
			username:       "gst12345",
			want:           TypeEmployee,
		},
		{
			name:           "short username strips to empty stem",
			studentPattern: "_",
			guestPattern:   "gst",
			username:       "abc",
			want:           TypeEmployee,
		},
		{
			name:           "four character username strips to empty stem",
			studentPattern: "stu",
			guestPattern:   "gst",
			username:       "abcd",
			want:           TypeEmployee,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.studentPattern, tt.guestPattern)
			if got := c.Classify(tt.username); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.username, got, tt.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		userType Type
		want     string
	}{
		{TypeStudent, "student"},
		{TypeGuest, "guest"},
		{TypeEmployee, "employee"},
		{Type(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.userType.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.userType, got, tt.want)
		}
	}
}
