package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/form"
	"github.com/samandr77/microservices/onboarding/internal/validation"
)

func filled() entity.Application {
	return entity.Application{
		AgentID:       entity.DefaultAgentID,
		Status:        entity.StatusDraft,
		Name:          "Corner Store",
		City:          "Pune",
		Firm:          "Corner Store Pvt",
		BusinessType:  "Trust",
		MCC:           "5999",
		ContactPerson: "Asha Rao",
		Mobile:        "9876543210",
		Address1:      "12 MG Road",
		Locality:      "Camp",
		Pincode:       "411001",
		PAN:           "ABCDE1234F",
		PANDOB:        "1990-01-31",
		AccountType:   "Current",
		AccountHolder: "Asha Rao",
		IFSC:          "HDFC0000123",
		AccountNumber: "00112233445566",
		QRBoombox:     "DISABLED",
		DocPath:       "/documents/applications/x/",
	}
}

func TestSubmit_InvalidKeepsValues(t *testing.T) {
	t.Parallel()

	s := form.New(entity.NewDraft(entity.DefaultAgentID, ""))
	s = form.Change(s, entity.FieldName, "ab")

	before := s

	next, ok := form.Submit(s, validation.Onboarding())
	if ok {
		t.Fatal("Submit() ok = true for an empty draft")
	}

	if next.Errors[entity.FieldName] != "Application Name is required (min 3 characters)" {
		t.Errorf("name error = %q", next.Errors[entity.FieldName])
	}

	if next.Notice != form.NoticeFixErrors {
		t.Errorf("notice = %q", next.Notice)
	}

	if diff := cmp.Diff(before, s); diff != "" {
		t.Errorf("Submit() mutated its input (-before +after):\n%s", diff)
	}

	if next.Values != s.Values {
		t.Error("Submit() changed values")
	}
}

func TestChange_ClearsFieldError(t *testing.T) {
	t.Parallel()

	s := form.New(entity.NewDraft(entity.DefaultAgentID, ""))
	s, _ = form.Submit(s, validation.Onboarding())

	withErrors := s

	next := form.Change(s, entity.FieldMobile, "98")

	if _, ok := next.Errors[entity.FieldMobile]; ok {
		t.Error("mobile error not cleared")
	}

	if _, ok := withErrors.Errors[entity.FieldMobile]; !ok {
		t.Error("Change() mutated the previous error map")
	}

	if len(next.Errors) != len(withErrors.Errors)-1 {
		t.Errorf("errors = %d, want %d", len(next.Errors), len(withErrors.Errors)-1)
	}

	if next.Values.Mobile != "98" {
		t.Errorf("mobile = %q", next.Values.Mobile)
	}

	if got := form.Change(next, "unknown", "x"); !cmp.Equal(got, next) {
		t.Error("Change() with unknown field altered state")
	}
}

func TestSubmitLifecycle(t *testing.T) {
	t.Parallel()

	template := entity.NewDraft(entity.DefaultAgentID, "")

	s := form.New(filled())

	s, ok := form.Submit(s, validation.Onboarding())
	if !ok || !s.Submitting {
		t.Fatalf("Submit() = %v, submitting = %v, errors = %v", ok, s.Submitting, s.Errors)
	}

	if _, again := form.Submit(s, validation.Onboarding()); again {
		t.Error("second Submit() while submitting was accepted")
	}

	failed := form.Failed(s)
	if failed.Submitting || failed.Notice != form.NoticeFailure || failed.Values != filled() {
		t.Errorf("Failed() = %+v", failed)
	}

	done := form.Succeeded(s, template)

	want := form.State{
		Values: template,
		Errors: validation.Errors{},
		Notice: form.NoticeSuccess,
	}

	if diff := cmp.Diff(want, done); diff != "" {
		t.Errorf("Succeeded() mismatch (-want +got):\n%s", diff)
	}
}
