package github

type PullRequest struct {
	Extension

	URL               string            `json:"url"`
	ID                int64             `json:"id"`
	NodeID            string            `json:"node_id"`
	HTMLURL           string            `json:"html_url"`
	DiffURL           string            `json:"diff_url"`
	PatchURL          string            `json:"patch_url"`
	IssueURL          string            `json:"issue_url"`
	CommitsURL        string            `json:"commits_url"`
	ReviewCommentsURL string            `json:"review_comments_url"`
	ReviewCommentURL  string            `json:"review_comment_url"`
	CommentsURL       string            `json:"comments_url"`
	StatusesURL       string            `json:"statuses_url"`
	Number            int64             `json:"number"`
	State             PullRequestState  `json:"state"`
	Locked            bool              `json:"locked"`
	Title             string            `json:"title"`
	User              *SimpleUser       `json:"user"`
	Body              *string           `json:"body"`
	Labels            []*Label          `json:"labels"`
	Milestone         *Milestone        `json:"milestone"`
	CreatedAt         Timestamp         `json:"created_at"`
	UpdatedAt         Timestamp         `json:"updated_at"`
	ClosedAt          *Timestamp        `json:"closed_at"`
	MergedAt          *Timestamp        `json:"merged_at"`
	MergeCommitSHA    *string           `json:"merge_commit_sha"`
	Assignee          *SimpleUser       `json:"assignee"`
	Head              *PullRequestRef   `json:"head"`
	Base              *PullRequestRef   `json:"base"`
	Links             *PullRequestLinks `json:"_links"`
	AuthorAssociation AuthorAssociation `json:"author_association"`

	ActiveLockReason    *string       `json:"active_lock_reason,omitempty"`
	Assignees           []*SimpleUser `json:"assignees,omitempty"`
	RequestedReviewers  []*SimpleUser `json:"requested_reviewers,omitempty"`
	RequestedTeams      []*TeamSimple `json:"requested_teams,omitempty"`
	Draft               *bool         `json:"draft,omitempty"`
	Merged              *bool         `json:"merged,omitempty"`
	Mergeable           *bool         `json:"mergeable,omitempty"`
	Rebaseable          *bool         `json:"rebaseable,omitempty"`
	MergeableState      *string       `json:"mergeable_state,omitempty"`
	MergedBy            *SimpleUser   `json:"merged_by,omitempty"`
	Comments            *int64        `json:"comments,omitempty"`
	ReviewComments      *int64        `json:"review_comments,omitempty"`
	MaintainerCanModify *bool         `json:"maintainer_can_modify,omitempty"`
	Commits             *int64        `json:"commits,omitempty"`
	Additions           *int64        `json:"additions,omitempty"`
	Deletions           *int64        `json:"deletions,omitempty"`
	ChangedFiles        *int64        `json:"changed_files,omitempty"`
}

func (pr *PullRequest) DecodeObject(o *Object) error {
	pr.URL = o.String("url")
	pr.ID = o.Int("id")
	pr.NodeID = o.String("node_id")
	pr.HTMLURL = o.String("html_url")
	pr.DiffURL = o.String("diff_url")
	pr.PatchURL = o.String("patch_url")
	pr.IssueURL = o.String("issue_url")
	pr.CommitsURL = o.String("commits_url")
	pr.ReviewCommentsURL = o.String("review_comments_url")
	pr.ReviewCommentURL = o.String("review_comment_url")
	pr.CommentsURL = o.String("comments_url")
	pr.StatusesURL = o.String("statuses_url")
	pr.Number = o.Int("number")
	pr.State = Enum(o, "state", pullRequestStates...)
	pr.Locked = o.Bool("locked")
	pr.Title = o.String("title")
	pr.User = Nested[SimpleUser](o, "user")
	pr.Body = o.NullableString("body")
	pr.Labels = NestedList[Label](o, "labels")
	pr.Milestone = NullableNested[Milestone](o, "milestone")
	pr.CreatedAt = o.Timestamp("created_at")
	pr.UpdatedAt = o.Timestamp("updated_at")
	pr.ClosedAt = o.NullableTimestamp("closed_at")
	pr.MergedAt = o.NullableTimestamp("merged_at")
	pr.MergeCommitSHA = o.NullableString("merge_commit_sha")
	pr.Assignee = NullableNested[SimpleUser](o, "assignee")
	pr.Head = Nested[PullRequestRef](o, "head")
	pr.Base = Nested[PullRequestRef](o, "base")
	pr.Links = Nested[PullRequestLinks](o, "_links")
	pr.AuthorAssociation = Enum(o, "author_association", authorAssociations...)

	pr.ActiveLockReason = o.OptString("active_lock_reason")
	pr.Assignees = OptNestedList[SimpleUser](o, "assignees")
	pr.RequestedReviewers = OptNestedList[SimpleUser](o, "requested_reviewers")
	pr.RequestedTeams = OptNestedList[TeamSimple](o, "requested_teams")
	pr.Draft = o.OptBool("draft")
	pr.Merged = o.OptBool("merged")
	pr.Mergeable = o.OptBool("mergeable")
	pr.Rebaseable = o.OptBool("rebaseable")
	pr.MergeableState = o.OptString("mergeable_state")
	pr.MergedBy = OptNested[SimpleUser](o, "merged_by")
	pr.Comments = o.OptInt("comments")
	pr.ReviewComments = o.OptInt("review_comments")
	pr.MaintainerCanModify = o.OptBool("maintainer_can_modify")
	pr.Commits = o.OptInt("commits")
	pr.Additions = o.OptInt("additions")
	pr.Deletions = o.OptInt("deletions")
	pr.ChangedFiles = o.OptInt("changed_files")

	return o.Err()
}

// PullRequestRef is the head or base side of a pull request. Repo is nil
// when the fork it points to was deleted.
type PullRequestRef struct {
	Extension

	Label string      `json:"label"`
	Ref   string      `json:"ref"`
	SHA   string      `json:"sha"`
	User  *SimpleUser `json:"user"`
	Repo  *Repository `json:"repo"`
}

func (r *PullRequestRef) DecodeObject(o *Object) error {
	r.Label = o.String("label")
	r.Ref = o.String("ref")
	r.SHA = o.String("sha")
	r.User = NullableNested[SimpleUser](o, "user")
	r.Repo = NullableNested[Repository](o, "repo")

	return o.Err()
}

// PullRequestLinks holds the hypermedia links of a pull request. The wire
// key "self" is read as "this".
type PullRequestLinks struct {
	Extension

	This           *Link `json:"self"`
	HTML           *Link `json:"html"`
	Issue          *Link `json:"issue"`
	Comments       *Link `json:"comments"`
	ReviewComments *Link `json:"review_comments"`
	ReviewComment  *Link `json:"review_comment"`
	Commits        *Link `json:"commits"`
	Statuses       *Link `json:"statuses"`
}

func (*PullRequestLinks) FieldRenames() RenameTable { return pullRequestLinksRenames }

func (l *PullRequestLinks) DecodeObject(o *Object) error {
	l.This = Nested[Link](o, "this")
	l.HTML = Nested[Link](o, "html")
	l.Issue = Nested[Link](o, "issue")
	l.Comments = Nested[Link](o, "comments")
	l.ReviewComments = Nested[Link](o, "review_comments")
	l.ReviewComment = Nested[Link](o, "review_comment")
	l.Commits = Nested[Link](o, "commits")
	l.Statuses = Nested[Link](o, "statuses")

	return o.Err()
}

type Link struct {
	Extension

	Href string `json:"href"`
}

func (l *Link) DecodeObject(o *Object) error {
	l.Href = o.String("href")
	return o.Err()
}

// TeamSimple is a team as listed among the requested reviewers of a pull
// request.
type TeamSimple struct {
	Extension

	ID              int64   `json:"id"`
	NodeID          string  `json:"node_id"`
	URL             string  `json:"url"`
	HTMLURL         string  `json:"html_url"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     *string `json:"description"`
	Privacy         *string `json:"privacy,omitempty"`
	Permission      string  `json:"permission"`
	MembersURL      string  `json:"members_url"`
	RepositoriesURL string  `json:"repositories_url"`
}

func (t *TeamSimple) DecodeObject(o *Object) error {
	t.ID = o.Int("id")
	t.NodeID = o.String("node_id")
	t.URL = o.String("url")
	t.HTMLURL = o.String("html_url")
	t.Name = o.String("name")
	t.Slug = o.String("slug")
	t.Description = o.NullableString("description")
	t.Privacy = o.OptString("privacy")
	t.Permission = o.String("permission")
	t.MembersURL = o.String("members_url")
	t.RepositoriesURL = o.String("repositories_url")

	return o.Err()
}
