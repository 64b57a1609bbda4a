package models

// DoctorFormPatch carries a partial update of the doctor form. Passwords are
// submitted with login or registration and are never part of a patch.
type DoctorFormPatch struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization"`
}

// Apply merges the non-nil fields of p into form.
func (p DoctorFormPatch) Apply(form *DoctorAuthForm) {
	if p.Name != nil {
		form.Name = *p.Name
	}
	if p.Email != nil {
		form.Email = *p.Email
	}
	if p.Specialization != nil {
		form.Specialization = *p.Specialization
	}
}
