package auth

// Well-known destinations referenced by the landing policy. Opaque path
// identifiers from the guard's point of view; their content lives in the
// HTTP layer.
const (
	LoginPath     = "/login"
	BlueprintPath = "/blueprint"
	SamplesPath   = "/samples"
)

// LandingPath is the Role Landing Policy: the fixed mapping from a role to
// its default destination. It is shared by the root redirect, the post-login
// redirect, and the guard's mismatch redirect so the three call sites can
// never disagree about where a role belongs.
func LandingPath(r Role) string {
	switch r {
	case RoleAdmin:
		return SamplesPath
	case RoleUser:
		return BlueprintPath
	default:
		// Roles outside the closed enumeration cannot originate from the
		// credential store; treat them like regular users rather than guess.
		return BlueprintPath
	}
}

// DecisionKind enumerates the terminal outcomes of a guard evaluation.
type DecisionKind string

const (
	// DecisionRender lets the requested destination render.
	DecisionRender DecisionKind = "render"
	// DecisionRedirectToLogin sends an unauthenticated caller to the login
	// entry point, carrying the originally requested path.
	DecisionRedirectToLogin DecisionKind = "redirect_to_login"
	// DecisionRedirectToRoleHome sends an authenticated caller whose role is
	// not allowed to its role landing page, with an access-denied notice.
	DecisionRedirectToRoleHome DecisionKind = "redirect_to_role_home"
)

// RouteAccess declares a destination's role requirement. An empty
// AllowedRoles set means "any authenticated role".
type RouteAccess struct {
	AllowedRoles []Role
}

// Allows reports whether the role requirement admits the given role.
func (a RouteAccess) Allows(r Role) bool {
	if len(a.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range a.AllowedRoles {
		if allowed == r {
			return true
		}
	}
	return false
}

// Decision is the guard's verdict for one navigation attempt.
type Decision struct {
	Kind DecisionKind
	// Location is the redirect target for the redirect decisions.
	Location string
	// ReturnTo carries the originally requested path on login redirects so
	// the login flow could return the caller there. Advisory: the login flow
	// does not currently consume it.
	ReturnTo string
	// Role is the session role whose landing page was chosen, set on
	// role-home redirects.
	Role Role
}

// Evaluate decides what the caller should do for a requested destination.
// Every input maps to a defined decision; there are no failure cases.
func Evaluate(sess *Session, access RouteAccess, requestedPath string) Decision {
	if sess == nil {
		return Decision{
			Kind:     DecisionRedirectToLogin,
			Location: LoginPath,
			ReturnTo: requestedPath,
		}
	}
	if access.Allows(sess.Role) {
		return Decision{Kind: DecisionRender}
	}
	return Decision{
		Kind:     DecisionRedirectToRoleHome,
		Location: LandingPath(sess.Role),
		Role:     sess.Role,
	}
}
