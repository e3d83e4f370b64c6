package model

// Access scoping: who may do what with a form. The owner has full rights
// except responding to their own form; everyone else only ever sees the
// published side of a LIVE form. The ADMIN role is reserved and carries no
// extra rights here.

func CanRead(a Actor, f *Form) bool {
	if a.ID == f.OwnerID {
		return true
	}
	return f.Status == StatusLive
}

func CanModify(a Actor, f *Form) bool {
	return a.ID == f.OwnerID
}

func CanRespond(a Actor, f *Form) bool {
	return a.ID != f.OwnerID && f.Status == StatusLive
}

func CanViewResponses(a Actor, f *Form) bool {
	return a.ID == f.OwnerID
}
