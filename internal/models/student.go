package models

import "time"

// Student represents a learner registered in the institution.
//
// EducationYearID is denormalized: it should match the class's year but the
// schema does not enforce that, only the transfer operation keeps them in sync.
type Student struct {
	ID                int64     `db:"id" json:"id"`
	Photo             *string   `db:"photo" json:"photo,omitempty"`
	FirstName         string    `db:"first_name" json:"first_name"`
	LastName          string    `db:"last_name" json:"last_name"`
	StudentNumber     string    `db:"student_number" json:"student_number"`
	BirthDate         string    `db:"birth_date" json:"birth_date"`
	ClassID           int64     `db:"class_id" json:"class_id"`
	EducationYearID   int64     `db:"education_year_id" json:"education_year_id"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	HealthInfo        string    `db:"health_info" json:"health_info"`
	ParentsTogether   bool      `db:"parents_together" json:"parents_together"`
	IsBilsem          bool      `db:"is_bilsem" json:"is_bilsem"`
	SpecialConditions string    `db:"special_conditions" json:"special_conditions"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// StudentSummary is the class-roster row: student columns plus the contact
// essentials of both parents projected through outer joins.
type StudentSummary struct {
	Student
	MotherName  *string `db:"mother_name" json:"mother_name,omitempty"`
	MotherPhone *string `db:"mother_phone" json:"mother_phone,omitempty"`
	MotherEmail *string `db:"mother_email" json:"mother_email,omitempty"`
	FatherName  *string `db:"father_name" json:"father_name,omitempty"`
	FatherPhone *string `db:"father_phone" json:"father_phone,omitempty"`
	FatherEmail *string `db:"father_email" json:"father_email,omitempty"`
}

// StudentDetail carries every mother and father column so a student without
// parent records still renders, with those fields absent.
type StudentDetail struct {
	Student
	MotherName        *string `db:"mother_name" json:"mother_name,omitempty"`
	MotherPhone       *string `db:"mother_phone" json:"mother_phone,omitempty"`
	MotherEmail       *string `db:"mother_email" json:"mother_email,omitempty"`
	MotherJob         *string `db:"mother_job" json:"mother_job,omitempty"`
	MotherWorkAddress *string `db:"mother_work_address" json:"mother_work_address,omitempty"`
	MotherAddress     *string `db:"mother_address" json:"mother_address,omitempty"`
	MotherIsGuardian  *bool   `db:"mother_is_guardian" json:"mother_is_guardian,omitempty"`
	FatherName        *string `db:"father_name" json:"father_name,omitempty"`
	FatherPhone       *string `db:"father_phone" json:"father_phone,omitempty"`
	FatherEmail       *string `db:"father_email" json:"father_email,omitempty"`
	FatherJob         *string `db:"father_job" json:"father_job,omitempty"`
	FatherWorkAddress *string `db:"father_work_address" json:"father_work_address,omitempty"`
	FatherAddress     *string `db:"father_address" json:"father_address,omitempty"`
	FatherIsGuardian  *bool   `db:"father_is_guardian" json:"father_is_guardian,omitempty"`
}

// ParentInfo is one parent slot (mother or father) for a student. At most one
// row exists per student and role, enforced by a unique constraint.
type ParentInfo struct {
	ID          int64  `db:"id" json:"id"`
	StudentID   int64  `db:"student_id" json:"student_id"`
	Name        string `db:"name" json:"name"`
	Phone       string `db:"phone" json:"phone"`
	Email       string `db:"email" json:"email"`
	Job         string `db:"job" json:"job"`
	WorkAddress string `db:"work_address" json:"work_address"`
	Address     string `db:"address" json:"address"`
	IsGuardian  bool   `db:"is_guardian" json:"is_guardian"`
}
