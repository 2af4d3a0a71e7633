package github

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ShapeInfo describes a registered shape and how to decode a response
// carrying it.
type ShapeInfo struct {
	Name string
	// List is true when the registered endpoint answers with an array of
	// the shape.
	List    bool
	Renames RenameTable
	Decode  func(raw *RawResponse) (Result, error)
}

var registry = map[string]ShapeInfo{}

func register[T any, P shapePtr[T]]() {
	name := shapeName[T]()

	var renames RenameTable
	if r, ok := any(P(new(T))).(Renamer); ok {
		renames = r.FieldRenames()
	}

	registry[name] = ShapeInfo{
		Name:    name,
		Renames: renames,
		Decode:  FromRawResponse[T, P],
	}
	registry[name+"List"] = ShapeInfo{
		Name:    name + "List",
		List:    true,
		Renames: renames,
		Decode:  FromRawListResponse[T, P],
	}
}

func init() {
	register[SimpleUser]()
	register[PrivateUser]()
	register[Plan]()
	register[Repository]()
	register[RepositoryPermissions]()
	register[LicenseSimple]()
	register[Issue]()
	register[IssuePullRequestRef]()
	register[Label]()
	register[Milestone]()
	register[ReactionRollup]()
	register[IssueEventRename]()
	register[PullRequest]()
	register[PullRequestRef]()
	register[PullRequestLinks]()
	register[Link]()
	register[TeamSimple]()
	register[AuditLogEvent]()
	register[ManagementConsoleSettings]()
	register[EnterpriseSettings]()
	register[EnterpriseSMTPSettings]()

	registry[diffShape] = ShapeInfo{Name: diffShape, Decode: FromDiffResponse}
}

// LookupShape returns the registered shape called name. Every shape is
// also registered under name+"List" for array responses.
func LookupShape(name string) (ShapeInfo, bool) {
	info, ok := registry[name]
	return info, ok
}

// ShapeNames returns the registered names in lexical order.
func ShapeNames() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// Shapes returns every registered shape ordered by name.
func Shapes() []ShapeInfo {
	names := ShapeNames()
	out := make([]ShapeInfo, 0, len(names))
	for _, n := range names {
		out = append(out, registry[n])
	}

	return out
}
