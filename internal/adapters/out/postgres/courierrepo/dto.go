// Package courierrepo maps courier aggregates and their supervisor assignments
// to the couriers and courier_assignments tables.
package courierrepo

import (
	"time"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is one row of the couriers table. A non-null DeletedAt marks a
// soft-deleted courier.
type CourierDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Phone       string          `gorm:"type:varchar(32);not null"`
	Available   bool            `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	DeletedAt   *time.Time
	Assignments []AssignmentDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

// AssignmentDTO links a courier to one supervisor.
type AssignmentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SupervisorID uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedAt   time.Time
}

func (AssignmentDTO) TableName() string {
	return "courier_assignments"
}

func fromDomain(c *courier.Courier) CourierDTO {
	courierID := c.ID().Bytes()
	assignments := make([]AssignmentDTO, 0, len(c.Assignments()))

	for _, a := range c.Assignments() {
		assignments = append(assignments, AssignmentDTO{
			ID:           a.ID().Bytes(),
			CourierID:    courierID,
			SupervisorID: a.SupervisorID().Bytes(),
			AssignedAt:   a.AssignedAt(),
		})
	}

	return CourierDTO{
		ID:          courierID,
		Name:        c.Name(),
		Phone:       c.Phone(),
		Available:   c.IsAvailable(),
		CreatedAt:   c.CreatedAt(),
		DeletedAt:   c.DeletedAt(),
		Assignments: assignments,
	}
}

// toDomain rebuilds a courier with its assignments.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignments := make([]*courier.Assignment, 0, len(dto.Assignments))
	for _, row := range dto.Assignments {
		a, assignmentErr := assignmentToDomain(row)
		if assignmentErr != nil {
			return nil, assignmentErr
		}
		assignments = append(assignments, a)
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, dto.Available, dto.CreatedAt, dto.DeletedAt, assignments)
}

func assignmentToDomain(dto AssignmentDTO) (*courier.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supervisorID, err := kernel.UUIDFromBytes(dto.SupervisorID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreAssignment(id, supervisorID, dto.AssignedAt)
}
