package services

import (
	"sort"

	"github.com/Mohfazam/CIVICOS/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Each starts empty; tests seed what they
// need through the add helpers.

type fakeCitizenRepo struct {
	citizens map[uuid.UUID]*models.Citizen
}

func newFakeCitizenRepo() *fakeCitizenRepo {
	return &fakeCitizenRepo{citizens: make(map[uuid.UUID]*models.Citizen)}
}

func (f *fakeCitizenRepo) add(name, email, constituency string) *models.Citizen {
	c := &models.Citizen{Name: name, Email: email, Constituency: constituency}
	c.ID = uuid.New()
	f.citizens[c.ID] = c
	return c
}

func (f *fakeCitizenRepo) FindCitizenByID(id uuid.UUID) (*models.Citizen, error) {
	c, ok := f.citizens[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCitizenRepo) FindCitizenByEmail(email string) (*models.Citizen, error) {
	for _, c := range f.citizens {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCitizenRepo) CitizenExists(id uuid.UUID) (bool, error) {
	_, ok := f.citizens[id]
	return ok, nil
}

type fakeDirectoryRepo struct {
	mlas map[uuid.UUID]*models.MLA
	orgs map[uuid.UUID]*models.Organization
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{
		mlas: make(map[uuid.UUID]*models.MLA),
		orgs: make(map[uuid.UUID]*models.Organization),
	}
}

func (f *fakeDirectoryRepo) addMLA(name, constituency string) *models.MLA {
	m := &models.MLA{Name: name, Party: "IND", Constituency: constituency, Email: name + "@assembly.gov.in"}
	m.ID = uuid.New()
	f.mlas[m.ID] = m
	return m
}

func (f *fakeDirectoryRepo) addOrg(name, constituency string) *models.Organization {
	o := &models.Organization{Name: name, Category: "WATER", Constituency: constituency}
	o.ID = uuid.New()
	f.orgs[o.ID] = o
	return o
}

func (f *fakeDirectoryRepo) FindMLAByID(id uuid.UUID) (*models.MLA, error) {
	m, ok := f.mlas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeDirectoryRepo) FindOrganizationByID(id uuid.UUID) (*models.Organization, error) {
	o, ok := f.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeDirectoryRepo) MLAExists(id uuid.UUID) (bool, error) {
	_, ok := f.mlas[id]
	return ok, nil
}

func (f *fakeDirectoryRepo) OrganizationExists(id uuid.UUID) (bool, error) {
	_, ok := f.orgs[id]
	return ok, nil
}

func (f *fakeDirectoryRepo) ListMLAsByRating(limit int) ([]models.MLA, error) {
	var out []models.MLA
	for _, m := range f.mlas {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Rating, out[j].Rating
		switch {
		case ri != nil && rj != nil:
			return *ri > *rj
		case ri != nil:
			return true
		case rj != nil:
			return false
		}
		return out[i].Name < out[j].Name
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeIssueRepo struct {
	issues      map[uuid.UUID]*models.Issue
	lastUpdates map[string]interface{}
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: make(map[uuid.UUID]*models.Issue)}
}

func (f *fakeIssueRepo) add(issue *models.Issue) *models.Issue {
	if issue.ID == uuid.Nil {
		issue.ID = uuid.New()
	}
	f.issues[issue.ID] = issue
	return issue
}

func (f *fakeIssueRepo) CreateIssue(issue *models.Issue) error {
	issue.ID = uuid.New()
	f.issues[issue.ID] = issue
	return nil
}

func (f *fakeIssueRepo) UpdateIssue(id uuid.UUID, updates map[string]interface{}) (*models.Issue, error) {
	issue, ok := f.issues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.lastUpdates = updates
	if v, ok := updates["status"]; ok {
		issue.Status = v.(models.IssueStatus)
	}
	if v, ok := updates["severity"]; ok {
		issue.Severity = v.(models.IssueSeverity)
	}
	return issue, nil
}

func (f *fakeIssueRepo) FindIssueByID(id uuid.UUID) (*models.Issue, error) {
	issue, ok := f.issues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return issue, nil
}

func (f *fakeIssueRepo) FindIssueWithThread(id uuid.UUID) (*models.Issue, error) {
	return f.FindIssueByID(id)
}

func (f *fakeIssueRepo) IssueExists(id uuid.UUID) (bool, error) {
	_, ok := f.issues[id]
	return ok, nil
}

func (f *fakeIssueRepo) ListIssues(filter models.IssueFilter) ([]models.Issue, error) {
	var out []models.Issue
	for _, issue := range f.issues {
		out = append(out, *issue)
	}
	return out, nil
}

func (f *fakeIssueRepo) CountIssues(filter models.IssueFilter) (int64, error) {
	return int64(len(f.issues)), nil
}

type upvotePair struct {
	issueID   uuid.UUID
	citizenID uuid.UUID
}

type fakeUpvoteRepo struct {
	rows map[upvotePair]bool
}

func newFakeUpvoteRepo() *fakeUpvoteRepo {
	return &fakeUpvoteRepo{rows: make(map[upvotePair]bool)}
}

func (f *fakeUpvoteRepo) ToggleUpvote(issueID, citizenID uuid.UUID) (bool, int, error) {
	pair := upvotePair{issueID, citizenID}
	if f.rows[pair] {
		delete(f.rows, pair)
	} else {
		f.rows[pair] = true
	}
	count, _ := f.CountUpvotes(issueID)
	return f.rows[pair], int(count), nil
}

func (f *fakeUpvoteRepo) HasUpvoted(issueID, citizenID uuid.UUID) (bool, error) {
	return f.rows[upvotePair{issueID, citizenID}], nil
}

func (f *fakeUpvoteRepo) CountUpvotes(issueID uuid.UUID) (int64, error) {
	var count int64
	for pair := range f.rows {
		if pair.issueID == issueID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUpvoteRepo) ListUpvoters(issueID uuid.UUID) ([]models.Upvote, error) {
	var out []models.Upvote
	for pair := range f.rows {
		if pair.issueID == issueID {
			out = append(out, models.Upvote{IssueID: pair.issueID, CitizenID: pair.citizenID})
		}
	}
	return out, nil
}

// fakeCommentRepo mirrors the real repo's contract of returning created
// comments with the author relation attached.
type fakeCommentRepo struct {
	comments  map[uuid.UUID]*models.Comment
	citizens  *fakeCitizenRepo
	directory *fakeDirectoryRepo
}

func newFakeCommentRepo(citizens *fakeCitizenRepo, directory *fakeDirectoryRepo) *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:  make(map[uuid.UUID]*models.Comment),
		citizens:  citizens,
		directory: directory,
	}
}

func (f *fakeCommentRepo) CreateComment(comment *models.Comment) (*models.Comment, error) {
	comment.ID = uuid.New()
	if comment.CitizenAuthorID != nil {
		comment.CitizenAuthor = f.citizens.citizens[*comment.CitizenAuthorID]
	}
	if comment.MLAAuthorID != nil {
		comment.MLAAuthor = f.directory.mlas[*comment.MLAAuthorID]
	}
	if comment.OrgAuthorID != nil {
		comment.OrgAuthor = f.directory.orgs[*comment.OrgAuthorID]
	}
	f.comments[comment.ID] = comment
	return comment, nil
}

func (f *fakeCommentRepo) FindCommentByID(id uuid.UUID) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return comment, nil
}

func (f *fakeCommentRepo) DeleteComment(id uuid.UUID) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) ListCommentsByIssue(issueID uuid.UUID) ([]models.Comment, error) {
	var out []models.Comment
	for _, comment := range f.comments {
		if comment.IssueID == issueID {
			out = append(out, *comment)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	issues []*models.Issue
	mlas   []*models.MLA
}

func (f *fakeNotifier) IssueAssigned(issue *models.Issue, mla *models.MLA) {
	f.issues = append(f.issues, issue)
	f.mlas = append(f.mlas, mla)
}
