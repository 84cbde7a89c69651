package validation

import (
	"regexp"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

const NameMinLen = 3

var (
	lettersRegexp       = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	mobileRegexp        = regexp.MustCompile(`^\d{10}$`)
	pincodeRegexp       = regexp.MustCompile(`^\d{6}$`)
	panRegexp           = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscRegexp          = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountNumberRegexp = regexp.MustCompile(`^\d{10,18}$`)
)

func required(field, msg string) Rule {
	return Rule{Field: field, Required: true, Message: msg}
}

// Onboarding is the rule table of the merchant onboarding application.
func Onboarding() Rules {
	return Rules{
		{
			Field:     entity.FieldName,
			Required:  true,
			MinLength: NameMinLen,
			Message:   "Application Name is required (min 3 characters)",
		},
		required(entity.FieldCity, "City is required"),
		required(entity.FieldFirm, "Firm is required"),
		required(entity.FieldBusinessType, "Business Type is required"),
		{
			Field:           entity.FieldContactPerson,
			Required:        true,
			Pattern:         lettersRegexp,
			Message:         "Contact Person must contain only letters and spaces",
			RequiredMessage: "Contact Person is required",
		},
		{
			Field:           entity.FieldMobile,
			Required:        true,
			Pattern:         mobileRegexp,
			Message:         "Mobile number must be exactly 10 digits",
			RequiredMessage: "Mobile is required",
		},
		required(entity.FieldAddress1, "Install Address 1 is required"),
		required(entity.FieldLocality, "Install Locality is required"),
		{
			Field:           entity.FieldPincode,
			Required:        true,
			Pattern:         pincodeRegexp,
			Message:         "Pincode must be 6 digits",
			RequiredMessage: "Pincode is required",
		},
		required(entity.FieldMCC, "MCC is required"),
		{
			Field:           entity.FieldPAN,
			Required:        true,
			Pattern:         panRegexp,
			Message:         "Invalid PAN format (e.g., RTGHP2345G)",
			RequiredMessage: "PAN is required",
		},
		required(entity.FieldPANDOB, "PAN DOB is required"),
		required(entity.FieldAccountType, "Account Type is required"),
		{
			Field:           entity.FieldAccountHolder,
			Required:        true,
			Pattern:         lettersRegexp,
			Message:         "Account Holder Name must contain only letters and spaces",
			RequiredMessage: "Account Holder Name is required",
		},
		{
			Field:           entity.FieldIFSC,
			Required:        true,
			Pattern:         ifscRegexp,
			Message:         "Invalid IFSC format (e.g., SBIN0001458)",
			RequiredMessage: "IFSC code is required",
		},
		{
			Field:           entity.FieldAccountNumber,
			Required:        true,
			Pattern:         accountNumberRegexp,
			Message:         "Account Number must be 10-18 digits",
			RequiredMessage: "Account Number is required",
		},
		required(entity.FieldQRBoombox, "qrBoombox selection is required"),
	}
}
