package domain

// Access policy: pure decision functions over an authenticated identity
// and the resource it wants to act on. Callers must resolve existence
// first so that an absent resource yields ErrNotFound rather than
// ErrForbidden.

// CanCreateCampaign allows campaign creation for organizations only.
func CanCreateCampaign(actor *User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsOrganization() {
		return ErrForbidden
	}
	return nil
}

// CanManageCampaign allows update and deletion for the owning
// organization only. Other identities, including other organizations,
// are rejected.
func CanManageCampaign(actor *User, campaign *Campaign) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsOrganization() || actor.ID != campaign.OwnerID {
		return ErrForbidden
	}
	return nil
}

// CanDonate allows donation creation for supporters only.
func CanDonate(actor *User) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if !actor.IsSupporter() {
		return ErrForbidden
	}
	return nil
}

// CanViewCampaignDonations allows the donation list and per-campaign
// stats for the owning organization only.
func CanViewCampaignDonations(actor *User, campaign *Campaign) error {
	return CanManageCampaign(actor, campaign)
}
