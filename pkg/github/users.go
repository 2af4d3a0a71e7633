package github

// SimpleUser is the user object embedded in most other responses.
type SimpleUser struct {
	Extension

	Login             string  `json:"login"`
	ID                int64   `json:"id"`
	NodeID            string  `json:"node_id"`
	AvatarURL         string  `json:"avatar_url"`
	GravatarID        *string `json:"gravatar_id"`
	URL               string  `json:"url"`
	HTMLURL           string  `json:"html_url"`
	FollowersURL      string  `json:"followers_url"`
	FollowingURL      string  `json:"following_url"`
	GistsURL          string  `json:"gists_url"`
	StarredURL        string  `json:"starred_url"`
	SubscriptionsURL  string  `json:"subscriptions_url"`
	OrganizationsURL  string  `json:"organizations_url"`
	ReposURL          string  `json:"repos_url"`
	EventsURL         string  `json:"events_url"`
	ReceivedEventsURL string  `json:"received_events_url"`
	Type              string  `json:"type"`
	SiteAdmin         bool    `json:"site_admin"`

	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	StarredAt    *Timestamp `json:"starred_at,omitempty"`
	UserViewType *string    `json:"user_view_type,omitempty"`
}

func (u *SimpleUser) DecodeObject(o *Object) error {
	u.Login = o.String("login")
	u.ID = o.Int("id")
	u.NodeID = o.String("node_id")
	u.AvatarURL = o.String("avatar_url")
	u.GravatarID = o.NullableString("gravatar_id")
	u.URL = o.String("url")
	u.HTMLURL = o.String("html_url")
	u.FollowersURL = o.String("followers_url")
	u.FollowingURL = o.String("following_url")
	u.GistsURL = o.String("gists_url")
	u.StarredURL = o.String("starred_url")
	u.SubscriptionsURL = o.String("subscriptions_url")
	u.OrganizationsURL = o.String("organizations_url")
	u.ReposURL = o.String("repos_url")
	u.EventsURL = o.String("events_url")
	u.ReceivedEventsURL = o.String("received_events_url")
	u.Type = o.String("type")
	u.SiteAdmin = o.Bool("site_admin")

	u.Name = o.OptString("name")
	u.Email = o.OptString("email")
	u.StarredAt = o.OptTimestamp("starred_at")
	u.UserViewType = o.OptString("user_view_type")

	return o.Err()
}

// PrivateUser is the authenticated user, as returned by GET /user.
type PrivateUser struct {
	SimpleUser

	Company                 *string   `json:"company"`
	Blog                    *string   `json:"blog"`
	Location                *string   `json:"location"`
	Hireable                *bool     `json:"hireable"`
	Bio                     *string   `json:"bio"`
	TwitterUsername         *string   `json:"twitter_username,omitempty"`
	PublicRepos             int64     `json:"public_repos"`
	PublicGists             int64     `json:"public_gists"`
	Followers               int64     `json:"followers"`
	Following               int64     `json:"following"`
	CreatedAt               Timestamp `json:"created_at"`
	UpdatedAt               Timestamp `json:"updated_at"`
	PrivateGists            int64     `json:"private_gists"`
	TotalPrivateRepos       int64     `json:"total_private_repos"`
	OwnedPrivateRepos       int64     `json:"owned_private_repos"`
	DiskUsage               int64     `json:"disk_usage"`
	Collaborators           int64     `json:"collaborators"`
	TwoFactorAuthentication bool      `json:"two_factor_authentication"`

	Plan              *Plan      `json:"plan,omitempty"`
	LDAPDN            *string    `json:"ldap_dn,omitempty"`
	BusinessPlus      *bool      `json:"business_plus,omitempty"`
	NotificationEmail *string    `json:"notification_email,omitempty"`
	SuspendedAt       *Timestamp `json:"suspended_at,omitempty"`
}

func (u *PrivateUser) DecodeObject(o *Object) error {
	if err := u.SimpleUser.DecodeObject(o); err != nil {
		return err
	}

	// name and email are nullable but required on this shape.
	u.Name = o.NullableString("name")
	u.Email = o.NullableString("email")
	u.Company = o.NullableString("company")
	u.Blog = o.NullableString("blog")
	u.Location = o.NullableString("location")
	u.Hireable = o.NullableBool("hireable")
	u.Bio = o.NullableString("bio")
	u.TwitterUsername = o.OptString("twitter_username")
	u.PublicRepos = o.Int("public_repos")
	u.PublicGists = o.Int("public_gists")
	u.Followers = o.Int("followers")
	u.Following = o.Int("following")
	u.CreatedAt = o.Timestamp("created_at")
	u.UpdatedAt = o.Timestamp("updated_at")
	u.PrivateGists = o.Int("private_gists")
	u.TotalPrivateRepos = o.Int("total_private_repos")
	u.OwnedPrivateRepos = o.Int("owned_private_repos")
	u.DiskUsage = o.Int("disk_usage")
	u.Collaborators = o.Int("collaborators")
	u.TwoFactorAuthentication = o.Bool("two_factor_authentication")

	u.Plan = OptNested[Plan](o, "plan")
	u.LDAPDN = o.OptString("ldap_dn")
	u.BusinessPlus = o.OptBool("business_plus")
	u.NotificationEmail = o.OptString("notification_email")
	u.SuspendedAt = o.OptTimestamp("suspended_at")

	return o.Err()
}

type Plan struct {
	Extension

	Name          string `json:"name"`
	Space         int64  `json:"space"`
	PrivateRepos  int64  `json:"private_repos"`
	Collaborators int64  `json:"collaborators"`
	Seats         *int64 `json:"seats,omitempty"`
	FilledSeats   *int64 `json:"filled_seats,omitempty"`
}

func (p *Plan) DecodeObject(o *Object) error {
	p.Name = o.String("name")
	p.Space = o.Int("space")
	p.PrivateRepos = o.Int("private_repos")
	p.Collaborators = o.Int("collaborators")
	p.Seats = o.OptInt("seats")
	p.FilledSeats = o.OptInt("filled_seats")

	return o.Err()
}
