package member

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
	"github.com/xuri/excelize/v2"
)

type MemberServiceImpl struct {
	member.MemberRepository
}

func NewMemberService(memberRepository member.MemberRepository) member.MemberService {
	return &MemberServiceImpl{MemberRepository: memberRepository}
}

// Add implements member.MemberService.
func (s *MemberServiceImpl) Add(ctx context.Context, req member.AddMemberRequest) (member.Member, error) {
	if err := req.Validate(); err != nil {
		return member.Member{}, err
	}

	return s.MemberRepository.Create(ctx, member.Member{
		RollNo:     strings.TrimSpace(req.RollNo),
		Name:       strings.TrimSpace(req.Name),
		Department: strings.TrimSpace(req.Department),
		Year:       req.Year,
		Vertical:   req.Vertical,
	})
}

// List implements member.MemberService.
func (s *MemberServiceImpl) List(ctx context.Context, vertical string) ([]member.Member, error) {
	if vertical == "" {
		return s.MemberRepository.ListAll(ctx)
	}
	return s.MemberRepository.ListByVertical(ctx, vertical)
}

// Get implements member.MemberService.
func (s *MemberServiceImpl) Get(ctx context.Context, rollNo string, vertical string) (member.Member, error) {
	m, err := s.MemberRepository.GetByRollNo(ctx, rollNo)
	if err != nil {
		return member.Member{}, err
	}
	if vertical != "" && m.Vertical != vertical {
		// A lead must not see members of other verticals; report not found
		// rather than leaking existence.
		return member.Member{}, member.ErrMemberNotFound
	}
	return m, nil
}

// Update implements member.MemberService.
func (s *MemberServiceImpl) Update(ctx context.Context, req member.UpdateMemberRequest, vertical string) (member.Member, error) {
	if err := req.Validate(); err != nil {
		return member.Member{}, err
	}
	if _, err := s.Get(ctx, req.RollNo, vertical); err != nil {
		return member.Member{}, err
	}

	return s.MemberRepository.Update(ctx, req.RollNo, member.MemberUpdate{
		Name:       req.Name,
		Year:       req.Year,
		Department: req.Department,
	})
}

// Delete implements member.MemberService.
func (s *MemberServiceImpl) Delete(ctx context.Context, rollNo string, vertical string, deletedBy string) error {
	if _, err := s.Get(ctx, rollNo, vertical); err != nil {
		return err
	}
	return s.MemberRepository.SoftDelete(ctx, rollNo, deletedBy)
}

// ListDeleted implements member.MemberService.
func (s *MemberServiceImpl) ListDeleted(ctx context.Context) ([]member.Member, error) {
	return s.MemberRepository.ListDeleted(ctx)
}

// UploadXLSX implements member.MemberService. The workbook must follow the
// members template: a header row of Name, Roll No, Year, Department (a Role
// column is tolerated and ignored), then one member per row.
func (s *MemberServiceImpl) UploadXLSX(ctx context.Context, vertical string, file io.Reader) (member.UploadResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return member.UploadResult{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return member.UploadResult{}, member.ErrEmptySheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return member.UploadResult{}, fmt.Errorf("failed to read workbook rows: %w", err)
	}
	if len(rows) < 2 {
		return member.UploadResult{}, member.ErrEmptySheet
	}

	columns, err := templateColumnIndexes(rows[0])
	if err != nil {
		return member.UploadResult{}, err
	}

	result := member.UploadResult{}
	for i, row := range rows[1:] {
		req, err := rowToAddRequest(row, columns, vertical)
		if err != nil {
			result.Skipped++
			result.Failures = append(result.Failures, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		if err := req.Validate(); err != nil {
			result.Skipped++
			result.Failures = append(result.Failures, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		if _, err := s.MemberRepository.Create(ctx, member.Member{
			RollNo:     req.RollNo,
			Name:       req.Name,
			Department: req.Department,
			Year:       req.Year,
			Vertical:   vertical,
		}); err != nil {
			if errors.Is(err, member.ErrRollNoExists) {
				result.Skipped++
				result.Failures = append(result.Failures, fmt.Sprintf("row %d: %s already exists", i+2, req.RollNo))
				continue
			}
			return member.UploadResult{}, err
		}
		result.Added++
	}

	result.Message = fmt.Sprintf("%d members added, %d skipped", result.Added, result.Skipped)
	return result, nil
}

// templateColumnIndexes maps the template's column titles to their position
// in the uploaded header row, so reordered sheets still import.
func templateColumnIndexes(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, title := range header {
		columns[strings.ToLower(strings.TrimSpace(title))] = i
	}
	for _, required := range []string{"name", "roll no", "year", "department"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("workbook is missing the %q column", required)
		}
	}
	return columns, nil
}

func rowToAddRequest(row []string, columns map[string]int, vertical string) (member.AddMemberRequest, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	yearText := cell("year")
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return member.AddMemberRequest{}, fmt.Errorf("invalid year %q", yearText)
	}

	return member.AddMemberRequest{
		Name:       cell("name"),
		RollNo:     cell("roll no"),
		Year:       year,
		Department: cell("department"),
		Vertical:   vertical,
	}, nil
}

// Template builds the downloadable members workbook; exposed through the
// service so handlers and the CLI share one source of truth.
func Template() (*excelize.File, error) {
	return summary.MembersTemplate()
}
