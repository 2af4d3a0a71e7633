package github

type IssueState string

const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
)

var issueStates = []IssueState{IssueStateOpen, IssueStateClosed}

type IssueStateReason string

const (
	IssueStateReasonCompleted  IssueStateReason = "completed"
	IssueStateReasonReopened   IssueStateReason = "reopened"
	IssueStateReasonNotPlanned IssueStateReason = "not_planned"
)

var issueStateReasons = []IssueStateReason{
	IssueStateReasonCompleted,
	IssueStateReasonReopened,
	IssueStateReasonNotPlanned,
}

type MilestoneState string

const (
	MilestoneStateOpen   MilestoneState = "open"
	MilestoneStateClosed MilestoneState = "closed"
)

var milestoneStates = []MilestoneState{MilestoneStateOpen, MilestoneStateClosed}

type PullRequestState string

const (
	PullRequestStateOpen   PullRequestState = "open"
	PullRequestStateClosed PullRequestState = "closed"
)

var pullRequestStates = []PullRequestState{PullRequestStateOpen, PullRequestStateClosed}

type RepositoryVisibility string

const (
	RepositoryVisibilityPublic   RepositoryVisibility = "public"
	RepositoryVisibilityPrivate  RepositoryVisibility = "private"
	RepositoryVisibilityInternal RepositoryVisibility = "internal"
)

var repositoryVisibilities = []RepositoryVisibility{
	RepositoryVisibilityPublic,
	RepositoryVisibilityPrivate,
	RepositoryVisibilityInternal,
}

// AuthorAssociation is how the author of an issue, pull request or comment
// relates to the repository.
type AuthorAssociation string

const (
	AuthorAssociationCollaborator         AuthorAssociation = "COLLABORATOR"
	AuthorAssociationContributor          AuthorAssociation = "CONTRIBUTOR"
	AuthorAssociationFirstTimer           AuthorAssociation = "FIRST_TIMER"
	AuthorAssociationFirstTimeContributor AuthorAssociation = "FIRST_TIME_CONTRIBUTOR"
	AuthorAssociationMannequin            AuthorAssociation = "MANNEQUIN"
	AuthorAssociationMember               AuthorAssociation = "MEMBER"
	AuthorAssociationNone                 AuthorAssociation = "NONE"
	AuthorAssociationOwner                AuthorAssociation = "OWNER"
)

var authorAssociations = []AuthorAssociation{
	AuthorAssociationCollaborator,
	AuthorAssociationContributor,
	AuthorAssociationFirstTimer,
	AuthorAssociationFirstTimeContributor,
	AuthorAssociationMannequin,
	AuthorAssociationMember,
	AuthorAssociationNone,
	AuthorAssociationOwner,
}

// EnterpriseAuthMode is the user authentication backend of a GitHub
// Enterprise Server instance.
type EnterpriseAuthMode string

const (
	EnterpriseAuthModeDefault EnterpriseAuthMode = "default"
	EnterpriseAuthModeLDAP    EnterpriseAuthMode = "ldap"
	EnterpriseAuthModeCAS     EnterpriseAuthMode = "cas"
	EnterpriseAuthModeSAML    EnterpriseAuthMode = "saml"
)

var enterpriseAuthModes = []EnterpriseAuthMode{
	EnterpriseAuthModeDefault,
	EnterpriseAuthModeLDAP,
	EnterpriseAuthModeCAS,
	EnterpriseAuthModeSAML,
}
