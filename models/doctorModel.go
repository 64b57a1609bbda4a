package models

// Doctor is the authenticated clinician held in session state. The password
// digest stays in memory and is never written to the session store.
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	PasswordHash   string `json:"-"`
}

// DefaultSpecialization is assigned to doctors created through login.
const DefaultSpecialization = "Homeopathy"

// Specialization is one selectable option of the registration form.
type Specialization struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Specializations lists the options offered by the registration form.
var Specializations = []Specialization{
	{Value: "classical", Label: "Classical Homeopathy"},
	{Value: "clinical", Label: "Clinical Homeopathy"},
	{Value: "complex", Label: "Complex Homeopathy"},
	{Value: "pediatric", Label: "Pediatric Homeopathy"},
	{Value: "constitutional", Label: "Constitutional Homeopathy"},
}
