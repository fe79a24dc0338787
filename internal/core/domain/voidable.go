package domain

import "time"

// Voidable carries the soft-delete state shared by User, Project and
// Comment. Voiding is terminal: there is no un-void transition, and the
// three audit fields are set together exactly once, atomically with
// Voided=true. Records are hidden from every default read path once voided,
// never physically deleted.
type Voidable struct {
	Voided       bool       `json:"-" bson:"voided"`
	VoidedReason *string    `json:"voided_reason,omitempty" bson:"voided_reason,omitempty"`
	VoidedAt     *time.Time `json:"voided_at,omitempty" bson:"voided_at,omitempty"`
	VoidedBy     string     `json:"voided_by,omitempty" bson:"voided_by,omitempty"`
}

// IsVoided reports whether the terminal void transition has been applied.
func (v Voidable) IsVoided() bool {
	return v.Voided
}

// Void applies the terminal transition on the value. Persistence is the
// store's concern; the store additionally conditions its write on the
// document still being non-voided, which makes this check effective under
// concurrent voiders.
func (v *Voidable) Void(reason, actorID string, at time.Time) error {
	if v.Voided {
		return ErrImmutable
	}
	if reason == "" {
		return ErrBadRequest
	}
	v.Voided = true
	v.VoidedReason = &reason
	t := at.UTC()
	v.VoidedAt = &t
	v.VoidedBy = actorID
	return nil
}
