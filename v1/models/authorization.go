package models

// Directory-wide authorization tiers. Tiers are independent of roster ranks
// and only carried by directory accounts.
const (
	TierBronzeCommand    = "Bronze Command"
	TierSilverCommand    = "Silver Command"
	TierGoldCommand      = "Gold Command"
	TierChiefOfficerTeam = "Chief Officer Team"
)

// DefaultTier is assigned to accounts created without an explicit tier
const DefaultTier = TierBronzeCommand

// TierIn reports whether tier is one of allowed
func TierIn(tier string, allowed ...string) bool {
	for _, a := range allowed {
		if tier == a {
			return true
		}
	}
	return false
}

// CanAdministerDirectory gates the user, roster and guide admin surfaces
func CanAdministerDirectory(tier string) bool {
	return TierIn(tier, TierGoldCommand, TierSilverCommand)
}

// CanAdministerCadets gates the cadet ledger admin surface. The Chief
// Officer Team runs cadet training and is admitted here only.
func CanAdministerCadets(tier string) bool {
	return TierIn(tier, TierGoldCommand, TierSilverCommand, TierChiefOfficerTeam)
}

// CanAuthorGuides gates guide creation
func CanAuthorGuides(tier string) bool {
	return CanAdministerDirectory(tier)
}
