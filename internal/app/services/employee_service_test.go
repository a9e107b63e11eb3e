package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unifiedacademics/uap-backend/internal/app/models"
	"github.com/unifiedacademics/uap-backend/internal/app/models/dto"
	"github.com/unifiedacademics/uap-backend/internal/pkg/apperrors"
	"github.com/unifiedacademics/uap-backend/internal/pkg/auth"
)

func validEmployeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:          "Asha Sharma",
		Email:         "asha@uap.academy",
		ContactNumber: "9000000001",
		DOB:           "1990-05-20",
		Department:    models.DefaultDepartment,
		AadhaarNumber: "123456789012",
		PANNumber:     "ABCPS1234F",
		DateOfJoining: "2024-01-15",
		Address:       "12 College Road",
	}
}

func newEmployeeFixture() (*EmployeeService, *fakeEmployeeRepo, *fakeNotifier) {
	repo := &fakeEmployeeRepo{}
	notifier := &fakeNotifier{}
	svc := NewEmployeeService(repo, notifier, zerolog.Nop())
	return svc, repo, notifier
}

func TestCreateEmployeeAssignsIDAndEmailsCredentials(t *testing.T) {
	svc, repo, notifier := newEmployeeFixture()

	employee, err := svc.Create(context.Background(), validEmployeeRequest())
	require.NoError(t, err)

	assert.Equal(t, "DICT001", employee.EmployeeID)
	assert.True(t, employee.IsActive)
	assert.NotEmpty(t, employee.Password)
	require.Len(t, repo.employees, 1)

	messages := notifier.sent()
	require.Len(t, messages, 1)
	assert.Equal(t, "asha@uap.academy", messages[0].To)
	assert.Contains(t, messages[0].Body, "DICT001")

	// The emailed plaintext must verify against the stored hash.
	lines := strings.Split(messages[0].Body, "\n")
	var plain string
	for _, line := range lines {
		if strings.HasPrefix(line, "Password") {
			parts := strings.SplitN(line, ":", 2)
			require.Len(t, parts, 2)
			plain = strings.TrimSpace(parts[1])
		}
	}
	require.NotEmpty(t, plain)
	assert.True(t, auth.CheckPassword(employee.Password, plain))
}

func TestCreateEmployeeRejectsBadIdentityDocuments(t *testing.T) {
	svc, _, _ := newEmployeeFixture()
	ctx := context.Background()

	req := validEmployeeRequest()
	req.AadhaarNumber = "12345"
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAadhaar)

	req = validEmployeeRequest()
	req.PANNumber = "ABCPR1234F" // 5th character must match the surname initial
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPAN)

	req = validEmployeeRequest()
	req.DOB = "20/05/1990"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateEmployeePoolExhaustion(t *testing.T) {
	svc, repo, _ := newEmployeeFixture()
	ctx := context.Background()

	for i := 0; i < models.DepartmentCapacity; i++ {
		req := validEmployeeRequest()
		req.Email = fmt.Sprintf("employee%d@uap.academy", i)
		req.AadhaarNumber = fmt.Sprintf("%012d", 100000000000+i)
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}
	require.Len(t, repo.employees, models.DepartmentCapacity)

	_, err := svc.Create(ctx, validEmployeeRequest())
	assert.ErrorIs(t, err, apperrors.ErrDepartmentFull)
}

func TestCreateEmployeeReusesFreedSlot(t *testing.T) {
	svc, repo, _ := newEmployeeFixture()
	ctx := context.Background()

	first, err := svc.Create(ctx, validEmployeeRequest())
	require.NoError(t, err)

	second := validEmployeeRequest()
	second.Email = "second@uap.academy"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	// Hard-remove the first record; its slot becomes the lowest free number.
	repo.employees = repo.employees[1:]

	third := validEmployeeRequest()
	third.Email = "third@uap.academy"
	created, err := svc.Create(ctx, third)
	require.NoError(t, err)
	assert.Equal(t, first.EmployeeID, created.EmployeeID)
}

func TestUpdateEmployeeRecomputesAge(t *testing.T) {
	svc, _, _ := newEmployeeFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, validEmployeeRequest())
	require.NoError(t, err)
	originalAge := created.Age

	newDOB := "1985-05-20"
	updated, err := svc.Update(ctx, created.EmployeeID, dto.UpdateEmployeeRequest{DOB: &newDOB})
	require.NoError(t, err)
	assert.Equal(t, originalAge+5, updated.Age)
}

func TestUpdateEmployeeValidatesSuppliedDocuments(t *testing.T) {
	svc, _, _ := newEmployeeFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, validEmployeeRequest())
	require.NoError(t, err)

	bad := "not-a-pan"
	_, err = svc.Update(ctx, created.EmployeeID, dto.UpdateEmployeeRequest{PANNumber: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPAN)
}

func TestDeactivateAndReactivate(t *testing.T) {
	svc, repo, _ := newEmployeeFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, validEmployeeRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.EmployeeID))
	assert.False(t, repo.employees[0].IsActive)

	require.NoError(t, svc.Reactivate(ctx, created.EmployeeID))
	assert.True(t, repo.employees[0].IsActive)

	assert.ErrorIs(t, svc.Deactivate(ctx, "DICT999"), apperrors.ErrEmployeeNotFound)
}
