package github

// Issue is an issue or, when PullRequest is set, the issue half of a pull
// request.
type Issue struct {
	Extension

	ID                int64             `json:"id"`
	NodeID            string            `json:"node_id"`
	URL               string            `json:"url"`
	RepositoryURL     string            `json:"repository_url"`
	LabelsURL         string            `json:"labels_url"`
	CommentsURL       string            `json:"comments_url"`
	EventsURL         string            `json:"events_url"`
	HTMLURL           string            `json:"html_url"`
	Number            int64             `json:"number"`
	State             IssueState        `json:"state"`
	Title             string            `json:"title"`
	User              *SimpleUser       `json:"user"`
	Labels            []*Label          `json:"labels"`
	Assignee          *SimpleUser       `json:"assignee"`
	Milestone         *Milestone        `json:"milestone"`
	Locked            bool              `json:"locked"`
	Comments          int64             `json:"comments"`
	CreatedAt         Timestamp         `json:"created_at"`
	UpdatedAt         Timestamp         `json:"updated_at"`
	ClosedAt          *Timestamp        `json:"closed_at"`
	AuthorAssociation AuthorAssociation `json:"author_association"`

	Body             *string              `json:"body,omitempty"`
	StateReason      *IssueStateReason    `json:"state_reason,omitempty"`
	Assignees        []*SimpleUser        `json:"assignees,omitempty"`
	ActiveLockReason *string              `json:"active_lock_reason,omitempty"`
	PullRequest      *IssuePullRequestRef `json:"pull_request,omitempty"`
	Draft            *bool                `json:"draft,omitempty"`
	ClosedBy         *SimpleUser          `json:"closed_by,omitempty"`
	Reactions        *ReactionRollup      `json:"reactions,omitempty"`
}

func (i *Issue) DecodeObject(o *Object) error {
	i.ID = o.Int("id")
	i.NodeID = o.String("node_id")
	i.URL = o.String("url")
	i.RepositoryURL = o.String("repository_url")
	i.LabelsURL = o.String("labels_url")
	i.CommentsURL = o.String("comments_url")
	i.EventsURL = o.String("events_url")
	i.HTMLURL = o.String("html_url")
	i.Number = o.Int("number")
	i.State = Enum(o, "state", issueStates...)
	i.Title = o.String("title")
	i.User = NullableNested[SimpleUser](o, "user")
	i.Labels = NestedList[Label](o, "labels")
	i.Assignee = NullableNested[SimpleUser](o, "assignee")
	i.Milestone = NullableNested[Milestone](o, "milestone")
	i.Locked = o.Bool("locked")
	i.Comments = o.Int("comments")
	i.CreatedAt = o.Timestamp("created_at")
	i.UpdatedAt = o.Timestamp("updated_at")
	i.ClosedAt = o.NullableTimestamp("closed_at")
	i.AuthorAssociation = Enum(o, "author_association", authorAssociations...)

	i.Body = o.OptString("body")
	i.StateReason = OptEnum(o, "state_reason", issueStateReasons...)
	i.Assignees = OptNestedList[SimpleUser](o, "assignees")
	i.ActiveLockReason = o.OptString("active_lock_reason")
	i.PullRequest = OptNested[IssuePullRequestRef](o, "pull_request")
	i.Draft = o.OptBool("draft")
	i.ClosedBy = OptNested[SimpleUser](o, "closed_by")
	i.Reactions = OptNested[ReactionRollup](o, "reactions")

	return o.Err()
}

// IsPullRequest reports whether the issue is the issue half of a pull
// request.
func (i *Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// IssuePullRequestRef links an issue to its pull request.
type IssuePullRequestRef struct {
	Extension

	URL      *string    `json:"url"`
	HTMLURL  *string    `json:"html_url"`
	DiffURL  *string    `json:"diff_url"`
	PatchURL *string    `json:"patch_url"`
	MergedAt *Timestamp `json:"merged_at,omitempty"`
}

func (r *IssuePullRequestRef) DecodeObject(o *Object) error {
	r.URL = o.NullableString("url")
	r.HTMLURL = o.NullableString("html_url")
	r.DiffURL = o.NullableString("diff_url")
	r.PatchURL = o.NullableString("patch_url")
	r.MergedAt = o.OptTimestamp("merged_at")

	return o.Err()
}

type Label struct {
	Extension

	ID          int64   `json:"id"`
	NodeID      string  `json:"node_id"`
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	Default     bool    `json:"default"`
}

func (l *Label) DecodeObject(o *Object) error {
	l.ID = o.Int("id")
	l.NodeID = o.String("node_id")
	l.URL = o.String("url")
	l.Name = o.String("name")
	l.Description = o.NullableString("description")
	l.Color = o.String("color")
	l.Default = o.Bool("default")

	return o.Err()
}

type Milestone struct {
	Extension

	URL          string         `json:"url"`
	HTMLURL      string         `json:"html_url"`
	LabelsURL    string         `json:"labels_url"`
	ID           int64          `json:"id"`
	NodeID       string         `json:"node_id"`
	Number       int64          `json:"number"`
	State        MilestoneState `json:"state"`
	Title        string         `json:"title"`
	Description  *string        `json:"description"`
	Creator      *SimpleUser    `json:"creator"`
	OpenIssues   int64          `json:"open_issues"`
	ClosedIssues int64          `json:"closed_issues"`
	CreatedAt    Timestamp      `json:"created_at"`
	UpdatedAt    Timestamp      `json:"updated_at"`
	ClosedAt     *Timestamp     `json:"closed_at"`
	DueOn        *Timestamp     `json:"due_on"`
}

func (m *Milestone) DecodeObject(o *Object) error {
	m.URL = o.String("url")
	m.HTMLURL = o.String("html_url")
	m.LabelsURL = o.String("labels_url")
	m.ID = o.Int("id")
	m.NodeID = o.String("node_id")
	m.Number = o.Int("number")
	m.State = EnumOr(o, "state", MilestoneStateOpen, milestoneStates...)
	m.Title = o.String("title")
	m.Description = o.NullableString("description")
	m.Creator = NullableNested[SimpleUser](o, "creator")
	m.OpenIssues = o.Int("open_issues")
	m.ClosedIssues = o.Int("closed_issues")
	m.CreatedAt = o.Timestamp("created_at")
	m.UpdatedAt = o.Timestamp("updated_at")
	m.ClosedAt = o.NullableTimestamp("closed_at")
	m.DueOn = o.NullableTimestamp("due_on")

	return o.Err()
}

// ReactionRollup counts the reactions on an issue or comment. The wire keys
// "+1" and "-1" are read as plusone and minusone.
type ReactionRollup struct {
	Extension

	URL        string `json:"url"`
	TotalCount int64  `json:"total_count"`
	PlusOne    int64  `json:"+1"`
	MinusOne   int64  `json:"-1"`
	Laugh      int64  `json:"laugh"`
	Confused   int64  `json:"confused"`
	Heart      int64  `json:"heart"`
	Hooray     int64  `json:"hooray"`
	Eyes       int64  `json:"eyes"`
	Rocket     int64  `json:"rocket"`
}

func (*ReactionRollup) FieldRenames() RenameTable { return reactionRollupRenames }

func (r *ReactionRollup) DecodeObject(o *Object) error {
	r.URL = o.String("url")
	r.TotalCount = o.Int("total_count")
	r.PlusOne = o.Int("plusone")
	r.MinusOne = o.Int("minusone")
	r.Laugh = o.Int("laugh")
	r.Confused = o.Int("confused")
	r.Heart = o.Int("heart")
	r.Hooray = o.Int("hooray")
	r.Eyes = o.Int("eyes")
	r.Rocket = o.Int("rocket")

	return o.Err()
}

// IssueEventRename is the rename payload of a "renamed" issue event.
type IssueEventRename struct {
	Extension

	From string `json:"from"`
	To   string `json:"to"`
}

func (*IssueEventRename) FieldRenames() RenameTable { return issueEventRenameRenames }

func (r *IssueEventRename) DecodeObject(o *Object) error {
	r.From = o.String("from_")
	r.To = o.String("to")

	return o.Err()
}
