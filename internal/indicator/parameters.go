package indicator

import (
	"fmt"
	"strings"
)

// Parameters carries every caller-supplied attribute in its raw string form.
// The same struct backs both the CLI flags and CSV batch rows, so enum,
// numeric, and timestamp parsing happens once, in Build.
type Parameters struct {
	// Required base attributes.
	Action             string
	Description        string
	ExpirationDateTime string
	TargetProduct      string
	ThreatType         string
	TLPLevel           string

	// Optional base attributes.
	ActivityGroupNames    string
	AdditionalInformation string
	Confidence            string
	DiamondModel          string
	ExternalID            string
	IsActive              string
	KillChain             string
	KnownFalsePositives   string
	LastReportedDateTime  string
	MalwareFamilyNames    string
	PassiveOnly           string
	Severity              string
	Tags                  string

	// Email observable.
	EmailEncoding        string
	EmailLanguage        string
	EmailRecipient       string
	EmailSenderAddress   string
	EmailSenderName      string
	EmailSourceDomain    string
	EmailSourceIPAddress string
	EmailSubject         string
	EmailXMailer         string

	// File observable.
	FileCompileDateTime string
	FileCreatedDateTime string
	FileHashType        string
	FileHashValue       string
	FileMutexName       string
	FileName            string
	FilePacker          string
	FilePath            string
	FileSize            string
	FileType            string

	// Network observable.
	DomainName                  string
	NetworkCidrBlock            string
	NetworkDestinationAsn       string
	NetworkDestinationCidrBlock string
	NetworkDestinationIPv4      string
	NetworkDestinationIPv6      string
	NetworkDestinationPort      string
	NetworkIPv4                 string
	NetworkIPv6                 string
	NetworkPort                 string
	NetworkProtocol             string
	NetworkSourceAsn            string
	NetworkSourceCidrBlock      string
	NetworkSourceIPv4           string
	NetworkSourceIPv6           string
	NetworkSourcePort           string
	URL                         string
	UserAgent                   string
}

// fieldSetters maps the wire-level attribute names (also used as CSV column
// headers) onto Parameters fields.
var fieldSetters = map[string]func(*Parameters, string){
	"action":             func(p *Parameters, v string) { p.Action = v },
	"description":        func(p *Parameters, v string) { p.Description = v },
	"expirationDateTime": func(p *Parameters, v string) { p.ExpirationDateTime = v },
	"targetProduct":      func(p *Parameters, v string) { p.TargetProduct = v },
	"threatType":         func(p *Parameters, v string) { p.ThreatType = v },
	"tlpLevel":           func(p *Parameters, v string) { p.TLPLevel = v },

	"activityGroupNames":    func(p *Parameters, v string) { p.ActivityGroupNames = v },
	"additionalInformation": func(p *Parameters, v string) { p.AdditionalInformation = v },
	"confidence":            func(p *Parameters, v string) { p.Confidence = v },
	"diamondModel":          func(p *Parameters, v string) { p.DiamondModel = v },
	"externalId":            func(p *Parameters, v string) { p.ExternalID = v },
	"isActive":              func(p *Parameters, v string) { p.IsActive = v },
	"killChain":             func(p *Parameters, v string) { p.KillChain = v },
	"knownFalsePositives":   func(p *Parameters, v string) { p.KnownFalsePositives = v },
	"lastReportedDateTime":  func(p *Parameters, v string) { p.LastReportedDateTime = v },
	"malwareFamilyNames":    func(p *Parameters, v string) { p.MalwareFamilyNames = v },
	"passiveOnly":           func(p *Parameters, v string) { p.PassiveOnly = v },
	"severity":              func(p *Parameters, v string) { p.Severity = v },
	"tags":                  func(p *Parameters, v string) { p.Tags = v },

	"emailEncoding":        func(p *Parameters, v string) { p.EmailEncoding = v },
	"emailLanguage":        func(p *Parameters, v string) { p.EmailLanguage = v },
	"emailRecipient":       func(p *Parameters, v string) { p.EmailRecipient = v },
	"emailSenderAddress":   func(p *Parameters, v string) { p.EmailSenderAddress = v },
	"emailSenderName":      func(p *Parameters, v string) { p.EmailSenderName = v },
	"emailSourceDomain":    func(p *Parameters, v string) { p.EmailSourceDomain = v },
	"emailSourceIpAddress": func(p *Parameters, v string) { p.EmailSourceIPAddress = v },
	"emailSubject":         func(p *Parameters, v string) { p.EmailSubject = v },
	"emailXMailer":         func(p *Parameters, v string) { p.EmailXMailer = v },

	"fileCompileDateTime": func(p *Parameters, v string) { p.FileCompileDateTime = v },
	"fileCreatedDateTime": func(p *Parameters, v string) { p.FileCreatedDateTime = v },
	"fileHashType":        func(p *Parameters, v string) { p.FileHashType = v },
	"fileHashValue":       func(p *Parameters, v string) { p.FileHashValue = v },
	"fileMutexName":       func(p *Parameters, v string) { p.FileMutexName = v },
	"fileName":            func(p *Parameters, v string) { p.FileName = v },
	"filePacker":          func(p *Parameters, v string) { p.FilePacker = v },
	"filePath":            func(p *Parameters, v string) { p.FilePath = v },
	"fileSize":            func(p *Parameters, v string) { p.FileSize = v },
	"fileType":            func(p *Parameters, v string) { p.FileType = v },

	"domainName":                  func(p *Parameters, v string) { p.DomainName = v },
	"networkCidrBlock":            func(p *Parameters, v string) { p.NetworkCidrBlock = v },
	"networkDestinationAsn":       func(p *Parameters, v string) { p.NetworkDestinationAsn = v },
	"networkDestinationCidrBlock": func(p *Parameters, v string) { p.NetworkDestinationCidrBlock = v },
	"networkDestinationIPv4":      func(p *Parameters, v string) { p.NetworkDestinationIPv4 = v },
	"networkDestinationIPv6":      func(p *Parameters, v string) { p.NetworkDestinationIPv6 = v },
	"networkDestinationPort":      func(p *Parameters, v string) { p.NetworkDestinationPort = v },
	"networkIPv4":                 func(p *Parameters, v string) { p.NetworkIPv4 = v },
	"networkIPv6":                 func(p *Parameters, v string) { p.NetworkIPv6 = v },
	"networkPort":                 func(p *Parameters, v string) { p.NetworkPort = v },
	"networkProtocol":             func(p *Parameters, v string) { p.NetworkProtocol = v },
	"networkSourceAsn":            func(p *Parameters, v string) { p.NetworkSourceAsn = v },
	"networkSourceCidrBlock":      func(p *Parameters, v string) { p.NetworkSourceCidrBlock = v },
	"networkSourceIPv4":           func(p *Parameters, v string) { p.NetworkSourceIPv4 = v },
	"networkSourceIPv6":           func(p *Parameters, v string) { p.NetworkSourceIPv6 = v },
	"networkSourcePort":           func(p *Parameters, v string) { p.NetworkSourcePort = v },
	"url":                         func(p *Parameters, v string) { p.URL = v },
	"userAgent":                   func(p *Parameters, v string) { p.UserAgent = v },
}

// SetField assigns a raw value by its wire-level attribute name. Unknown
// names are rejected so a misspelled CSV header fails loudly instead of
// silently dropping a column.
func (p *Parameters) SetField(name, value string) error {
	setter, ok := fieldSetters[strings.TrimSpace(name)]
	if !ok {
		return fmt.Errorf("unknown attribute %q", name)
	}
	setter(p, value)
	return nil
}

// KnownFields lists every attribute name accepted by SetField.
func KnownFields() []string {
	fields := make([]string, 0, len(fieldSetters))
	for name := range fieldSetters {
		fields = append(fields, name)
	}
	return fields
}
