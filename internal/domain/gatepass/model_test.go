package gatepass

import "testing"

func TestCanCheckIn(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{StatusActive, true},
		{StatusUsed, false},
		{StatusRevoked, false},
	}
	for _, c := range cases {
		p := GatePass{Status: c.status}
		if got := p.CanCheckIn(); got != c.want {
			t.Errorf("CanCheckIn with status %s: expected %v, got %v", c.status, c.want, got)
		}
	}
}

func TestCanRevoke(t *testing.T) {
	if !(&GatePass{Status: StatusActive}).CanRevoke() {
		t.Error("active pass must be revocable")
	}
	if (&GatePass{Status: StatusUsed}).CanRevoke() {
		t.Error("used pass must not be revocable")
	}
}

func TestValidType(t *testing.T) {
	for _, typ := range []string{TypeVisitor, TypeContractor, TypeVendor, TypeMember, TypeGuest} {
		if !ValidType(typ) {
			t.Errorf("expected %s to be a valid type", typ)
		}
	}
	if ValidType("drone") {
		t.Error("unknown type must be rejected")
	}
}
