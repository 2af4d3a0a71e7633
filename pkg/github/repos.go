package github

// Repository is a repository as returned by GET /repos/{owner}/{repo} and
// embedded in pull request refs.
type Repository struct {
	Extension

	ID          int64       `json:"id"`
	NodeID      string      `json:"node_id"`
	Name        string      `json:"name"`
	FullName    string      `json:"full_name"`
	Owner       *SimpleUser `json:"owner"`
	Private     bool        `json:"private"`
	HTMLURL     string      `json:"html_url"`
	Description *string     `json:"description"`
	Fork        bool        `json:"fork"`
	URL         string      `json:"url"`

	Homepage        *string                `json:"homepage,omitempty"`
	Language        *string                `json:"language,omitempty"`
	ForksCount      int64                  `json:"forks_count"`
	StargazersCount int64                  `json:"stargazers_count"`
	WatchersCount   int64                  `json:"watchers_count"`
	Size            int64                  `json:"size"`
	DefaultBranch   *string                `json:"default_branch,omitempty"`
	OpenIssuesCount int64                  `json:"open_issues_count"`
	IsTemplate      bool                   `json:"is_template"`
	Topics          []string               `json:"topics,omitempty"`
	HasIssues       bool                   `json:"has_issues"`
	HasProjects     bool                   `json:"has_projects"`
	HasWiki         bool                   `json:"has_wiki"`
	HasPages        bool                   `json:"has_pages"`
	Archived        bool                   `json:"archived"`
	Disabled        bool                   `json:"disabled"`
	Visibility      RepositoryVisibility   `json:"visibility"`
	PushedAt        *Timestamp             `json:"pushed_at,omitempty"`
	CreatedAt       *Timestamp             `json:"created_at,omitempty"`
	UpdatedAt       *Timestamp             `json:"updated_at,omitempty"`
	Permissions     *RepositoryPermissions `json:"permissions,omitempty"`
	License         *LicenseSimple         `json:"license,omitempty"`
}

func (r *Repository) DecodeObject(o *Object) error {
	r.ID = o.Int("id")
	r.NodeID = o.String("node_id")
	r.Name = o.String("name")
	r.FullName = o.String("full_name")
	r.Owner = Nested[SimpleUser](o, "owner")
	r.Private = o.Bool("private")
	r.HTMLURL = o.String("html_url")
	r.Description = o.NullableString("description")
	r.Fork = o.Bool("fork")
	r.URL = o.String("url")

	r.Homepage = o.OptString("homepage")
	r.Language = o.OptString("language")
	r.ForksCount = o.IntOr("forks_count", 0)
	r.StargazersCount = o.IntOr("stargazers_count", 0)
	r.WatchersCount = o.IntOr("watchers_count", 0)
	r.Size = o.IntOr("size", 0)
	r.DefaultBranch = o.OptString("default_branch")
	r.OpenIssuesCount = o.IntOr("open_issues_count", 0)
	r.IsTemplate = o.BoolOr("is_template", false)
	r.Topics = o.OptStringList("topics")
	r.HasIssues = o.BoolOr("has_issues", true)
	r.HasProjects = o.BoolOr("has_projects", true)
	r.HasWiki = o.BoolOr("has_wiki", true)
	r.HasPages = o.BoolOr("has_pages", false)
	r.Archived = o.BoolOr("archived", false)
	r.Disabled = o.BoolOr("disabled", false)
	r.Visibility = EnumOr(o, "visibility", RepositoryVisibilityPublic, repositoryVisibilities...)
	r.PushedAt = o.OptTimestamp("pushed_at")
	r.CreatedAt = o.OptTimestamp("created_at")
	r.UpdatedAt = o.OptTimestamp("updated_at")
	r.Permissions = OptNested[RepositoryPermissions](o, "permissions")
	r.License = OptNested[LicenseSimple](o, "license")

	return o.Err()
}

type RepositoryPermissions struct {
	Extension

	Admin    bool  `json:"admin"`
	Pull     bool  `json:"pull"`
	Push     bool  `json:"push"`
	Maintain *bool `json:"maintain,omitempty"`
	Triage   *bool `json:"triage,omitempty"`
}

func (p *RepositoryPermissions) DecodeObject(o *Object) error {
	p.Admin = o.Bool("admin")
	p.Pull = o.Bool("pull")
	p.Push = o.Bool("push")
	p.Maintain = o.OptBool("maintain")
	p.Triage = o.OptBool("triage")

	return o.Err()
}

type LicenseSimple struct {
	Extension

	Key     string  `json:"key"`
	Name    string  `json:"name"`
	URL     *string `json:"url"`
	SPDXID  *string `json:"spdx_id"`
	NodeID  string  `json:"node_id"`
	HTMLURL *string `json:"html_url,omitempty"`
}

func (l *LicenseSimple) DecodeObject(o *Object) error {
	l.Key = o.String("key")
	l.Name = o.String("name")
	l.URL = o.NullableString("url")
	l.SPDXID = o.NullableString("spdx_id")
	l.NodeID = o.String("node_id")
	l.HTMLURL = o.OptString("html_url")

	return o.Err()
}
