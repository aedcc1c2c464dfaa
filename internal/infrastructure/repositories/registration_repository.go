package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// RegistrationRepositoryImpl implements domain.RegistrationRepository
// using GORM. Records are append-only: the portal never updates or
// deletes an accepted submission.
type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

// DBRegistration represents the database model for Registration
type DBRegistration struct {
	Seq           uint      `gorm:"primaryKey;autoIncrement"`
	ID            string    `gorm:"uniqueIndex;size:32"`
	AadhaarNumber string    `gorm:"index;size:12"`
	PANNumber     string    `gorm:"size:10"`
	ApplicantName string    `gorm:"size:100"`
	Gender        string    `gorm:"size:16"`
	DateOfBirth   string    `gorm:"size:10"`
	MobileNumber  string    `gorm:"size:10"`
	EmailAddress  string    `gorm:"size:255"`
	Address       string    `gorm:"size:500"`
	PINCode       string    `gorm:"size:6"`
	City          string    `gorm:"size:100"`
	State         string    `gorm:"size:100"`
	SubmittedAt   time.Time `gorm:"index"`
	Status        string    `gorm:"size:16"`
}

// TableName returns the table name for GORM
func (DBRegistration) TableName() string {
	return "registrations"
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepositoryImpl {
	return &RegistrationRepositoryImpl{db: db}
}

// Append implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) Append(ctx context.Context, registration *domain.Registration) error {
	dbReg := domainToDB(registration)
	return r.db.WithContext(ctx).Create(dbReg).Error
}

// ListAll implements domain.RegistrationRepository, ordered by insertion
func (r *RegistrationRepositoryImpl) ListAll(ctx context.Context) ([]domain.Registration, error) {
	var dbRegs []DBRegistration
	if err := r.db.WithContext(ctx).Order("seq").Find(&dbRegs).Error; err != nil {
		return nil, err
	}

	registrations := make([]domain.Registration, 0, len(dbRegs))
	for i := range dbRegs {
		registrations = append(registrations, *dbToDomain(&dbRegs[i]))
	}
	return registrations, nil
}

// Count implements domain.RegistrationRepository
func (r *RegistrationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBRegistration{}).Count(&count).Error
	return count, err
}

func domainToDB(reg *domain.Registration) *DBRegistration {
	return &DBRegistration{
		ID:            reg.ID,
		AadhaarNumber: reg.AadhaarNumber,
		PANNumber:     reg.PANNumber,
		ApplicantName: reg.ApplicantName,
		Gender:        reg.Gender,
		DateOfBirth:   reg.DateOfBirth,
		MobileNumber:  reg.MobileNumber,
		EmailAddress:  reg.EmailAddress,
		Address:       reg.Address,
		PINCode:       reg.PINCode,
		City:          reg.City,
		State:         reg.State,
		SubmittedAt:   reg.SubmittedAt,
		Status:        reg.Status,
	}
}

func dbToDomain(dbReg *DBRegistration) *domain.Registration {
	return &domain.Registration{
		ID:            dbReg.ID,
		AadhaarNumber: dbReg.AadhaarNumber,
		PANNumber:     dbReg.PANNumber,
		ApplicantName: dbReg.ApplicantName,
		Gender:        dbReg.Gender,
		DateOfBirth:   dbReg.DateOfBirth,
		MobileNumber:  dbReg.MobileNumber,
		EmailAddress:  dbReg.EmailAddress,
		Address:       dbReg.Address,
		PINCode:       dbReg.PINCode,
		City:          dbReg.City,
		State:         dbReg.State,
		SubmittedAt:   dbReg.SubmittedAt,
		Status:        dbReg.Status,
	}
}
