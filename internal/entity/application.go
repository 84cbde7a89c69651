package entity

import (
	"strconv"

	"github.com/gofrs/uuid/v5"
)

const (
	DefaultAgentID       = 1027
	DefaultDocPathPrefix = "/documents/applications/"

	StatusDraft = "DRAFT"
)

// Field names as they travel on the wire.
const (
	FieldApplicationID     = "applicationId"
	FieldAgentID           = "agentId"
	FieldStatus            = "status"
	FieldName              = "applName"
	FieldCity              = "city"
	FieldFirm              = "firm"
	FieldDBA               = "dba"
	FieldBusinessType      = "business_type"
	FieldContactPerson     = "contactPerson"
	FieldMobile            = "mobile"
	FieldAddress1          = "instAddr1"
	FieldAddress2          = "instAddr2"
	FieldAddress3          = "instAddr3"
	FieldLocality          = "instLocality"
	FieldPincode           = "instPincode"
	FieldMCC               = "mcc"
	FieldPAN               = "pan"
	FieldPANDOB            = "panDob"
	FieldAccountType       = "meAcType"
	FieldAccountHolder     = "meName"
	FieldIFSC              = "melfsc"
	FieldAccountNumber     = "meAcNo"
	FieldQRBoombox         = "qrBoombox"
	FieldDocPath           = "docPath"
	FieldPANPath           = "panPath"
	FieldAadhaarPath       = "aadhaarPath"
	FieldBankStatementPath = "bankStatementPath"
	FieldShopPhotoPath     = "shopPhotoPath"
)

type Application struct {
	ApplicationID string `json:"applicationId" yaml:"applicationId"`
	AgentID       int    `json:"agentId" yaml:"agentId"`
	Status        string `json:"status" yaml:"status"`

	Name         string `json:"applName" yaml:"applName"`
	City         string `json:"city" yaml:"city"`
	Firm         string `json:"firm" yaml:"firm"`
	DBA          string `json:"dba" yaml:"dba"`
	BusinessType string `json:"business_type" yaml:"business_type"`
	MCC          string `json:"mcc" yaml:"mcc"`

	ContactPerson string `json:"contactPerson" yaml:"contactPerson"`
	Mobile        string `json:"mobile" yaml:"mobile"`

	Address1 string `json:"instAddr1" yaml:"instAddr1"`
	Address2 string `json:"instAddr2" yaml:"instAddr2"`
	Address3 string `json:"instAddr3" yaml:"instAddr3"`
	Locality string `json:"instLocality" yaml:"instLocality"`
	Pincode  string `json:"instPincode" yaml:"instPincode"`

	PAN    string `json:"pan" yaml:"pan"`
	PANDOB string `json:"panDob" yaml:"panDob"`

	AccountType   string `json:"meAcType" yaml:"meAcType"`
	AccountHolder string `json:"meName" yaml:"meName"`
	IFSC          string `json:"melfsc" yaml:"melfsc"`
	AccountNumber string `json:"meAcNo" yaml:"meAcNo"`

	QRBoombox string `json:"qrBoombox" yaml:"qrBoombox"`

	DocPath           string `json:"docPath" yaml:"docPath"`
	PANPath           string `json:"panPath" yaml:"panPath"`
	AadhaarPath       string `json:"aadhaarPath" yaml:"aadhaarPath"`
	BankStatementPath string `json:"bankStatementPath" yaml:"bankStatementPath"`
	ShopPhotoPath     string `json:"shopPhotoPath" yaml:"shopPhotoPath"`
}

// NewDraft returns the blank application a form starts from.
func NewDraft(agentID int, docPathPrefix string) Application {
	if docPathPrefix == "" {
		docPathPrefix = DefaultDocPathPrefix
	}

	return Application{
		AgentID: agentID,
		Status:  StatusDraft,
		DocPath: docPathPrefix + uuid.Must(uuid.NewV4()).String() + "/",
	}
}

func (a *Application) fields() []struct {
	name string
	ptr  *string
} {
	return []struct {
		name string
		ptr  *string
	}{
		{FieldApplicationID, &a.ApplicationID},
		{FieldStatus, &a.Status},
		{FieldName, &a.Name},
		{FieldCity, &a.City},
		{FieldFirm, &a.Firm},
		{FieldDBA, &a.DBA},
		{FieldBusinessType, &a.BusinessType},
		{FieldContactPerson, &a.ContactPerson},
		{FieldMobile, &a.Mobile},
		{FieldAddress1, &a.Address1},
		{FieldAddress2, &a.Address2},
		{FieldAddress3, &a.Address3},
		{FieldLocality, &a.Locality},
		{FieldPincode, &a.Pincode},
		{FieldMCC, &a.MCC},
		{FieldPAN, &a.PAN},
		{FieldPANDOB, &a.PANDOB},
		{FieldAccountType, &a.AccountType},
		{FieldAccountHolder, &a.AccountHolder},
		{FieldIFSC, &a.IFSC},
		{FieldAccountNumber, &a.AccountNumber},
		{FieldQRBoombox, &a.QRBoombox},
		{FieldDocPath, &a.DocPath},
		{FieldPANPath, &a.PANPath},
		{FieldAadhaarPath, &a.AadhaarPath},
		{FieldBankStatementPath, &a.BankStatementPath},
		{FieldShopPhotoPath, &a.ShopPhotoPath},
	}
}

// Fields returns the application as a field name to value mapping.
func (a Application) Fields() map[string]string {
	fs := a.fields()

	out := make(map[string]string, len(fs)+1)
	for _, f := range fs {
		out[f.name] = *f.ptr
	}

	out[FieldAgentID] = strconv.Itoa(a.AgentID)

	return out
}

// Set assigns one field by its wire name. It reports false for unknown names and for a
// non-numeric agent id.
func (a *Application) Set(field, value string) bool {
	if field == FieldAgentID {
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}

		a.AgentID = n

		return true
	}

	for _, f := range a.fields() {
		if f.name == field {
			*f.ptr = value
			return true
		}
	}

	return false
}

// Get returns a field value by its wire name.
func (a Application) Get(field string) (string, bool) {
	v, ok := a.Fields()[field]
	return v, ok
}

// FieldNames lists every wire field name in declaration order.
func FieldNames() []string {
	var a Application

	fs := a.fields()

	names := make([]string, 0, len(fs)+1)
	names = append(names, FieldApplicationID, FieldAgentID)

	for _, f := range fs[1:] {
		names = append(names, f.name)
	}

	return names
}

var (
	BusinessTypes = []string{"Proprietorship", "PartnershipFirm", "Trust", "Private LimitedLLP"}
	MCCCodes      = []Choice{
		{Value: "5411", Label: "5411 - Grocery Stores"},
		{Value: "5812", Label: "5812 - Eating Places/Restaurants"},
		{Value: "5999", Label: "5999 - Miscellaneous Retail"},
		{Value: "7011", Label: "7011 - Hotels/Motels"},
	}
	AccountTypes = []string{"Savings", "Current", "Salary"}
	QRStates     = []string{"ENABLED", "DISABLED"}
)

type Choice struct {
	Value string
	Label string
}
