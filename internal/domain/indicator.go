package domain

import "time"

// ThreatIndicator is the tiIndicator resource submitted to the Graph
// Security API. Optional scalar attributes are pointer-typed so an unset
// value is omitted from the wire payload instead of being sent as a zero.
type ThreatIndicator struct {
	// Required base attributes.
	Action             Action     `json:"action"`
	Description        string     `json:"description"`
	ExpirationDateTime time.Time  `json:"expirationDateTime"`
	TargetProduct      string     `json:"targetProduct"`
	ThreatType         ThreatType `json:"threatType"`
	TLPLevel           TLPLevel   `json:"tlpLevel"`

	// Optional base attributes.
	ActivityGroupNames    StringList   `json:"activityGroupNames,omitempty"`
	AdditionalInformation string       `json:"additionalInformation,omitempty"`
	Confidence            *int32       `json:"confidence,omitempty"`
	DiamondModel          DiamondModel `json:"diamondModel,omitempty"`
	ExternalID            string       `json:"externalId,omitempty"`
	IsActive              *bool        `json:"isActive,omitempty"`
	KillChain             StringList   `json:"killChain,omitempty"`
	KnownFalsePositives   string       `json:"knownFalsePositives,omitempty"`
	LastReportedDateTime  *time.Time   `json:"lastReportedDateTime,omitempty"`
	MalwareFamilyNames    StringList   `json:"malwareFamilyNames,omitempty"`
	PassiveOnly           *bool        `json:"passiveOnly,omitempty"`
	Severity              *int32       `json:"severity,omitempty"`
	Tags                  StringList   `json:"tags,omitempty"`

	// Email observable.
	EmailEncoding        string `json:"emailEncoding,omitempty"`
	EmailLanguage        string `json:"emailLanguage,omitempty"`
	EmailRecipient       string `json:"emailRecipient,omitempty"`
	EmailSenderAddress   string `json:"emailSenderAddress,omitempty"`
	EmailSenderName      string `json:"emailSenderName,omitempty"`
	EmailSourceDomain    string `json:"emailSourceDomain,omitempty"`
	EmailSourceIPAddress string `json:"emailSourceIpAddress,omitempty"`
	EmailSubject         string `json:"emailSubject,omitempty"`
	EmailXMailer         string `json:"emailXMailer,omitempty"`

	// File observable.
	FileCompileDateTime *time.Time   `json:"fileCompileDateTime,omitempty"`
	FileCreatedDateTime *time.Time   `json:"fileCreatedDateTime,omitempty"`
	FileHashType        FileHashType `json:"fileHashType,omitempty"`
	FileHashValue       string       `json:"fileHashValue,omitempty"`
	FileMutexName       string       `json:"fileMutexName,omitempty"`
	FileName            string       `json:"fileName,omitempty"`
	FilePacker          string       `json:"filePacker,omitempty"`
	FilePath            string       `json:"filePath,omitempty"`
	FileSize            *int64       `json:"fileSize,omitempty"`
	FileType            string       `json:"fileType,omitempty"`

	// Network observable.
	DomainName                  string `json:"domainName,omitempty"`
	NetworkCidrBlock            string `json:"networkCidrBlock,omitempty"`
	NetworkDestinationAsn       *int32 `json:"networkDestinationAsn,omitempty"`
	NetworkDestinationCidrBlock string `json:"networkDestinationCidrBlock,omitempty"`
	NetworkDestinationIPv4      string `json:"networkDestinationIPv4,omitempty"`
	NetworkDestinationIPv6      string `json:"networkDestinationIPv6,omitempty"`
	NetworkDestinationPort      *int32 `json:"networkDestinationPort,omitempty"`
	NetworkIPv4                 string `json:"networkIPv4,omitempty"`
	NetworkIPv6                 string `json:"networkIPv6,omitempty"`
	NetworkPort                 *int32 `json:"networkPort,omitempty"`
	NetworkProtocol             *int32 `json:"networkProtocol,omitempty"`
	NetworkSourceAsn            *int32 `json:"networkSourceAsn,omitempty"`
	NetworkSourceCidrBlock      string `json:"networkSourceCidrBlock,omitempty"`
	NetworkSourceIPv4           string `json:"networkSourceIPv4,omitempty"`
	NetworkSourceIPv6           string `json:"networkSourceIPv6,omitempty"`
	NetworkSourcePort           *int32 `json:"networkSourcePort,omitempty"`
	URL                         string `json:"url,omitempty"`
	UserAgent                   string `json:"userAgent,omitempty"`
}

// ObservableCategory discriminates which group of observable fields an
// indicator carries. Exactly one category must be populated per indicator.
type ObservableCategory string

const (
	CategoryEmail   ObservableCategory = "email"
	CategoryFile    ObservableCategory = "file"
	CategoryNetwork ObservableCategory = "network"
)

func (ti *ThreatIndicator) hasEmailFields() bool {
	return ti.EmailEncoding != "" || ti.EmailLanguage != "" || ti.EmailRecipient != "" ||
		ti.EmailSenderAddress != "" || ti.EmailSenderName != "" || ti.EmailSourceDomain != "" ||
		ti.EmailSourceIPAddress != "" || ti.EmailSubject != "" || ti.EmailXMailer != ""
}

func (ti *ThreatIndicator) hasFileFields() bool {
	return ti.FileCompileDateTime != nil || ti.FileCreatedDateTime != nil ||
		ti.FileHashType != "" || ti.FileHashValue != "" || ti.FileMutexName != "" ||
		ti.FileName != "" || ti.FilePacker != "" || ti.FilePath != "" ||
		ti.FileSize != nil || ti.FileType != ""
}

func (ti *ThreatIndicator) hasNetworkFields() bool {
	return ti.DomainName != "" || ti.NetworkCidrBlock != "" ||
		ti.NetworkDestinationAsn != nil || ti.NetworkDestinationCidrBlock != "" ||
		ti.NetworkDestinationIPv4 != "" || ti.NetworkDestinationIPv6 != "" ||
		ti.NetworkDestinationPort != nil || ti.NetworkIPv4 != "" || ti.NetworkIPv6 != "" ||
		ti.NetworkPort != nil || ti.NetworkProtocol != nil || ti.NetworkSourceAsn != nil ||
		ti.NetworkSourceCidrBlock != "" || ti.NetworkSourceIPv4 != "" ||
		ti.NetworkSourceIPv6 != "" || ti.NetworkSourcePort != nil ||
		ti.URL != "" || ti.UserAgent != ""
}

// Categories reports every observable category with at least one populated
// field, in a fixed email/file/network order.
func (ti *ThreatIndicator) Categories() []ObservableCategory {
	var cats []ObservableCategory
	if ti.hasEmailFields() {
		cats = append(cats, CategoryEmail)
	}
	if ti.hasFileFields() {
		cats = append(cats, CategoryFile)
	}
	if ti.hasNetworkFields() {
		cats = append(cats, CategoryNetwork)
	}
	return cats
}
