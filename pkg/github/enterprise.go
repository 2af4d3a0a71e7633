package github

// AuditLogEvent is one entry of an enterprise or organization audit log.
// Every field is optional: the set present depends on the action.
type AuditLogEvent struct {
	Extension

	// Timestamp is the wire "@timestamp", in milliseconds since the epoch.
	Timestamp *int64 `json:"@timestamp,omitempty"`
	// DocumentID is the wire "_document_id".
	DocumentID *string `json:"_document_id,omitempty"`

	Action                   *string  `json:"action,omitempty"`
	ActiveAt                 *string  `json:"active_at,omitempty"`
	Actor                    *string  `json:"actor,omitempty"`
	ActorID                  *int64   `json:"actor_id,omitempty"`
	ActorLocation            *string  `json:"actor_location,omitempty"`
	Business                 *string  `json:"business,omitempty"`
	BusinessID               *int64   `json:"business_id,omitempty"`
	CreatedAt                *int64   `json:"created_at,omitempty"`
	Name                     *string  `json:"name,omitempty"`
	Org                      *string  `json:"org,omitempty"`
	OrgID                    *int64   `json:"org_id,omitempty"`
	Repo                     *string  `json:"repo,omitempty"`
	RepositoryPublic         *bool    `json:"repository_public,omitempty"`
	Team                     *string  `json:"team,omitempty"`
	User                     *string  `json:"user,omitempty"`
	UserID                   *int64   `json:"user_id,omitempty"`
	Visibility               *string  `json:"visibility,omitempty"`
	OperationType            *string  `json:"operation_type,omitempty"`
	TransportProtocolName    *string  `json:"transport_protocol_name,omitempty"`
	ExternalIdentityNameID   *string  `json:"external_identity_nameid,omitempty"`
	ExternalIdentityUsername *string  `json:"external_identity_username,omitempty"`
	Events                   []string `json:"events,omitempty"`
}

func (*AuditLogEvent) FieldRenames() RenameTable { return auditLogEventRenames }

func (e *AuditLogEvent) DecodeObject(o *Object) error {
	e.Timestamp = o.OptInt("timestamp")
	e.DocumentID = o.OptString("document_id")

	e.Action = o.OptString("action")
	e.ActiveAt = o.OptString("active_at")
	e.Actor = o.OptString("actor")
	e.ActorID = o.OptInt("actor_id")
	e.ActorLocation = o.OptString("actor_location")
	e.Business = o.OptString("business")
	e.BusinessID = o.OptInt("business_id")
	e.CreatedAt = o.OptInt("created_at")
	e.Name = o.OptString("name")
	e.Org = o.OptString("org")
	e.OrgID = o.OptInt("org_id")
	e.Repo = o.OptString("repo")
	e.RepositoryPublic = o.OptBool("repository_public")
	e.Team = o.OptString("team")
	e.User = o.OptString("user")
	e.UserID = o.OptInt("user_id")
	e.Visibility = o.OptString("visibility")
	e.OperationType = o.OptString("operation_type")
	e.TransportProtocolName = o.OptString("transport_protocol_name")
	e.ExternalIdentityNameID = o.OptString("external_identity_nameid")
	e.ExternalIdentityUsername = o.OptString("external_identity_username")
	e.Events = o.OptStringList("events")

	return o.Err()
}

// ManagementConsoleSettings is the body of GET /setup/api/settings on
// GitHub Enterprise Server.
type ManagementConsoleSettings struct {
	Extension

	Enterprise *EnterpriseSettings `json:"enterprise,omitempty"`
	RunList    []string            `json:"run_list,omitempty"`
}

func (s *ManagementConsoleSettings) DecodeObject(o *Object) error {
	s.Enterprise = OptNested[EnterpriseSettings](o, "enterprise")
	s.RunList = o.OptStringList("run_list")

	return o.Err()
}

type EnterpriseSettings struct {
	Extension

	PrivateMode           *bool                   `json:"private_mode,omitempty"`
	PublicPages           *bool                   `json:"public_pages,omitempty"`
	SubdomainIsolation    *bool                   `json:"subdomain_isolation,omitempty"`
	SignupEnabled         *bool                   `json:"signup_enabled,omitempty"`
	GitHubHostname        *string                 `json:"github_hostname,omitempty"`
	IdenticonsHost        *string                 `json:"identicons_host,omitempty"`
	HTTPProxy             *string                 `json:"http_proxy,omitempty"`
	AuthMode              *EnterpriseAuthMode     `json:"auth_mode,omitempty"`
	ExpireSessions        *bool                   `json:"expire_sessions,omitempty"`
	AdminPassword         *string                 `json:"admin_password,omitempty"`
	ConfigurationID       *int64                  `json:"configuration_id,omitempty"`
	ConfigurationRunCount *int64                  `json:"configuration_run_count,omitempty"`
	SMTP                  *EnterpriseSMTPSettings `json:"smtp,omitempty"`
}

func (s *EnterpriseSettings) DecodeObject(o *Object) error {
	s.PrivateMode = o.OptBool("private_mode")
	s.PublicPages = o.OptBool("public_pages")
	s.SubdomainIsolation = o.OptBool("subdomain_isolation")
	s.SignupEnabled = o.OptBool("signup_enabled")
	s.GitHubHostname = o.OptString("github_hostname")
	s.IdenticonsHost = o.OptString("identicons_host")
	s.HTTPProxy = o.OptString("http_proxy")
	s.AuthMode = OptEnum(o, "auth_mode", enterpriseAuthModes...)
	s.ExpireSessions = o.OptBool("expire_sessions")
	s.AdminPassword = o.OptString("admin_password")
	s.ConfigurationID = o.OptInt("configuration_id")
	s.ConfigurationRunCount = o.OptInt("configuration_run_count")
	s.SMTP = OptNested[EnterpriseSMTPSettings](o, "smtp")

	return o.Err()
}

// EnterpriseSMTPSettings is the mail section of the management console
// settings. The wire key "discard-to-noreply-address" is read as
// "discard_to_noreply_address".
type EnterpriseSMTPSettings struct {
	Extension

	Enabled                 bool    `json:"enabled"`
	Address                 *string `json:"address,omitempty"`
	Authentication          *string `json:"authentication,omitempty"`
	Port                    *string `json:"port,omitempty"`
	Domain                  *string `json:"domain,omitempty"`
	Username                *string `json:"username,omitempty"`
	UserName                *string `json:"user_name,omitempty"`
	EnableStartTLSAuto      *bool   `json:"enable_starttls_auto,omitempty"`
	Password                *string `json:"password,omitempty"`
	DiscardToNoreplyAddress bool    `json:"discard-to-noreply-address"`
	SupportAddress          *string `json:"support_address,omitempty"`
	SupportAddressType      *string `json:"support_address_type,omitempty"`
	NoreplyAddress          *string `json:"noreply_address,omitempty"`
}

func (*EnterpriseSMTPSettings) FieldRenames() RenameTable { return enterpriseSMTPSettingsRenames }

func (s *EnterpriseSMTPSettings) DecodeObject(o *Object) error {
	s.Enabled = o.BoolOr("enabled", false)
	s.Address = o.OptString("address")
	s.Authentication = o.OptString("authentication")
	s.Port = o.OptString("port")
	s.Domain = o.OptString("domain")
	s.Username = o.OptString("username")
	s.UserName = o.OptString("user_name")
	s.EnableStartTLSAuto = o.OptBool("enable_starttls_auto")
	s.Password = o.OptString("password")
	s.DiscardToNoreplyAddress = o.BoolOr("discard_to_noreply_address", true)
	s.SupportAddress = o.OptString("support_address")
	s.SupportAddressType = o.OptString("support_address_type")
	s.NoreplyAddress = o.OptString("noreply_address")

	return o.Err()
}
