package auth

import "testing"

func TestLandingPath(t *testing.T) {
	if got := LandingPath(RoleAdmin); got != SamplesPath {
		t.Fatalf("admin landing = %q, want %q", got, SamplesPath)
	}
	if got := LandingPath(RoleUser); got != BlueprintPath {
		t.Fatalf("user landing = %q, want %q", got, BlueprintPath)
	}
	// Anything outside the closed enumeration falls back to the user landing.
	if got := LandingPath(Role("mystery")); got != BlueprintPath {
		t.Fatalf("unknown landing = %q, want %q", got, BlueprintPath)
	}
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	d := Evaluate(nil, RouteAccess{}, "/generate")
	if d.Kind != DecisionRedirectToLogin {
		t.Fatalf("kind = %q, want %q", d.Kind, DecisionRedirectToLogin)
	}
	if d.Location != LoginPath {
		t.Fatalf("location = %q, want %q", d.Location, LoginPath)
	}
	if d.ReturnTo != "/generate" {
		t.Fatalf("return-to = %q, want /generate", d.ReturnTo)
	}
}

func TestEvaluate_AuthenticatedUnrestricted(t *testing.T) {
	sess := &Session{Role: RoleUser}
	d := Evaluate(sess, RouteAccess{}, "/samples")
	if d.Kind != DecisionRender {
		t.Fatalf("kind = %q, want %q", d.Kind, DecisionRender)
	}
}

func TestEvaluate_RoleMatch(t *testing.T) {
	sess := &Session{Role: RoleAdmin}
	d := Evaluate(sess, RouteAccess{AllowedRoles: []Role{RoleAdmin}}, "/samples/upload")
	if d.Kind != DecisionRender {
		t.Fatalf("kind = %q, want %q", d.Kind, DecisionRender)
	}
}

func TestEvaluate_RoleMismatch_AdminOnUserOnly(t *testing.T) {
	sess := &Session{Role: RoleAdmin}
	d := Evaluate(sess, RouteAccess{AllowedRoles: []Role{RoleUser}}, "/blueprint")
	if d.Kind != DecisionRedirectToRoleHome {
		t.Fatalf("kind = %q, want %q", d.Kind, DecisionRedirectToRoleHome)
	}
	if d.Location != SamplesPath {
		t.Fatalf("location = %q, want %q", d.Location, SamplesPath)
	}
	if d.Role != RoleAdmin {
		t.Fatalf("role = %q, want admin", d.Role)
	}
}

func TestEvaluate_RoleMismatch_UserOnAdminOnly(t *testing.T) {
	sess := &Session{Role: RoleUser}
	d := Evaluate(sess, RouteAccess{AllowedRoles: []Role{RoleAdmin}}, "/samples/upload")
	if d.Kind != DecisionRedirectToRoleHome {
		t.Fatalf("kind = %q, want %q", d.Kind, DecisionRedirectToRoleHome)
	}
	if d.Location != BlueprintPath {
		t.Fatalf("location = %q, want %q", d.Location, BlueprintPath)
	}
}

// The root redirect, the post-login redirect, and the mismatch redirect all
// resolve through LandingPath; a mismatch decision must agree with a direct
// policy lookup for the same role.
func TestEvaluate_LandingConsistency(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleUser} {
		sess := &Session{Role: role}
		var other Role = RoleAdmin
		if role == RoleAdmin {
			other = RoleUser
		}
		d := Evaluate(sess, RouteAccess{AllowedRoles: []Role{other}}, "/anywhere")
		if d.Location != LandingPath(role) {
			t.Fatalf("mismatch redirect %q disagrees with landing policy %q for role %q",
				d.Location, LandingPath(role), role)
		}
	}
}
