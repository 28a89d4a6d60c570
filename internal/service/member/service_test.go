package member

import (
	"bytes"
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fakeMemberRepo is an in-memory MemberRepository keyed by roll number.
type fakeMemberRepo struct {
	members map[string]member.Member
	deleted map[string]member.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{
		members: make(map[string]member.Member),
		deleted: make(map[string]member.Member),
	}
}

func (r *fakeMemberRepo) Create(ctx context.Context, m member.Member) (member.Member, error) {
	if _, ok := r.members[m.RollNo]; ok {
		return member.Member{}, member.ErrRollNoExists
	}
	r.members[m.RollNo] = m
	return m, nil
}

func (r *fakeMemberRepo) GetByRollNo(ctx context.Context, rollNo string) (member.Member, error) {
	m, ok := r.members[rollNo]
	if !ok {
		return member.Member{}, member.ErrMemberNotFound
	}
	return m, nil
}

func (r *fakeMemberRepo) ListByVertical(ctx context.Context, vertical string) ([]member.Member, error) {
	var out []member.Member
	for _, m := range r.members {
		if m.Vertical == vertical {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMemberRepo) ListAll(ctx context.Context) ([]member.Member, error) {
	var out []member.Member
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMemberRepo) ListDeleted(ctx context.Context) ([]member.Member, error) {
	var out []member.Member
	for _, m := range r.deleted {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMemberRepo) Update(ctx context.Context, rollNo string, update member.MemberUpdate) (member.Member, error) {
	m, ok := r.members[rollNo]
	if !ok {
		return member.Member{}, member.ErrMemberNotFound
	}
	if update.Name != nil {
		m.Name = *update.Name
	}
	if update.Year != nil {
		m.Year = *update.Year
	}
	if update.Department != nil {
		m.Department = *update.Department
	}
	r.members[rollNo] = m
	return m, nil
}

func (r *fakeMemberRepo) SoftDelete(ctx context.Context, rollNo string, deletedBy string) error {
	m, ok := r.members[rollNo]
	if !ok {
		return member.ErrMemberNotFound
	}
	delete(r.members, rollNo)
	m.DeletedBy = &deletedBy
	r.deleted[rollNo] = m
	return nil
}

func seedMember(repo *fakeMemberRepo, rollNo, vertical string) {
	repo.members[rollNo] = member.Member{
		RollNo:     rollNo,
		Name:       "Member " + rollNo,
		Department: "CSE",
		Year:       2,
		Vertical:   vertical,
	}
}

func TestAddTrimsAndValidates(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)
	ctx := context.Background()

	m, err := svc.Add(ctx, member.AddMemberRequest{
		Name:       "  Alice  ",
		RollNo:     "r1",
		Year:       2,
		Department: " CSE ",
		Vertical:   "Tech",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", m.Name)
	assert.Equal(t, "CSE", m.Department)
	assert.Equal(t, "Tech", m.Vertical)

	_, err = svc.Add(ctx, member.AddMemberRequest{RollNo: "r2", Vertical: "Tech"})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestGetScopedByVertical(t *testing.T) {
	repo := newFakeMemberRepo()
	seedMember(repo, "r1", "Tech")
	svc := NewMemberService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, "r1", "Tech")
	assert.NoError(t, err)

	// Another vertical's lead gets not-found, not forbidden.
	_, err = svc.Get(ctx, "r1", "Media")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	// Empty vertical means admin scope.
	_, err = svc.Get(ctx, "r1", "")
	assert.NoError(t, err)
}

func TestDeleteRecordsActor(t *testing.T) {
	repo := newFakeMemberRepo()
	seedMember(repo, "r1", "Tech")
	svc := NewMemberService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "r1", "Tech", "lead1"))

	deleted, err := svc.ListDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	require.NotNil(t, deleted[0].DeletedBy)
	assert.Equal(t, "lead1", *deleted[0].DeletedBy)

	_, err = svc.Get(ctx, "r1", "Tech")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func uploadWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f, err := summary.MembersTemplate()
	require.NoError(t, err)
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Members Template", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestUploadXLSX(t *testing.T) {
	repo := newFakeMemberRepo()
	seedMember(repo, "dup1", "Tech")
	svc := NewMemberService(repo)
	ctx := context.Background()

	buf := uploadWorkbook(t, [][]interface{}{
		{"Alice", "r10", 2, "CSE", "Member"},
		{"Bob", "r11", 3, "ECE", ""},
		{"Duplicate", "dup1", 2, "CSE", ""},
		{"Bad Year", "r12", "second", "CSE", ""},
		{"", "r13", 1, "CSE", ""},
	})

	result, err := svc.UploadXLSX(ctx, "Tech", buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, result.Failures, 3)
	assert.Equal(t, "2 members added, 3 skipped", result.Message)

	added, err := repo.GetByRollNo(ctx, "r10")
	require.NoError(t, err)
	assert.Equal(t, "Alice", added.Name)
	assert.Equal(t, "Tech", added.Vertical)
}

func TestUploadXLSXEmptySheet(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())

	buf := uploadWorkbook(t, nil)
	_, err := svc.UploadXLSX(context.Background(), "Tech", buf)
	assert.ErrorIs(t, err, member.ErrEmptySheet)
}

func TestUploadXLSXMissingColumn(t *testing.T) {
	f := excelize.NewFile()
	header := []interface{}{"Name", "Year", "Department"}
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &header))
	row := []interface{}{"Alice", 2, "CSE"}
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A2", &row))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	svc := NewMemberService(newFakeMemberRepo())
	_, err := svc.UploadXLSX(context.Background(), "Tech", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"roll no"`)
}

func TestUploadXLSXGarbageInput(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())
	_, err := svc.UploadXLSX(context.Background(), "Tech", bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}
