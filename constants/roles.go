package constants

const (
	RoleAdmin    = "admin"
	RoleTeamLead = "team_lead"
	RoleMember   = "member"
)

func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleTeamLead, RoleMember:
		return true
	}
	return false
}
