package indicator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tisubmit/internal/domain"
)

const maxDescriptionLength = 100

// ValidationError reports a parameter that failed local validation. The
// submission for the affected indicator is never attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid indicator: " + e.Reason
	}
	return fmt.Sprintf("invalid indicator: attribute %q %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Accepted timestamp layouts. Date-only values are widened to midnight UTC.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Build validates the raw parameters and shapes them into the indicator
// submitted over the wire. All failures are ValidationErrors; the first
// failing attribute aborts the build.
func Build(p Parameters) (*domain.ThreatIndicator, error) {
	for _, req := range []struct{ name, value string }{
		{"action", p.Action},
		{"description", p.Description},
		{"expirationDateTime", p.ExpirationDateTime},
		{"targetProduct", p.TargetProduct},
		{"threatType", p.ThreatType},
		{"tlpLevel", p.TLPLevel},
	} {
		if strings.TrimSpace(req.value) == "" {
			return nil, invalid(req.name, "is required")
		}
	}

	if len(p.Description) > maxDescriptionLength {
		return nil, invalid("description", "exceeds %d characters", maxDescriptionLength)
	}

	ti := &domain.ThreatIndicator{
		Description:   p.Description,
		TargetProduct: p.TargetProduct,
	}

	var err error
	if ti.Action, err = domain.ParseAction(p.Action); err != nil {
		return nil, invalid("action", "%v", err)
	}
	if ti.ThreatType, err = domain.ParseThreatType(p.ThreatType); err != nil {
		return nil, invalid("threatType", "%v", err)
	}
	if ti.TLPLevel, err = domain.ParseTLPLevel(p.TLPLevel); err != nil {
		return nil, invalid("tlpLevel", "%v", err)
	}
	if ti.ExpirationDateTime, err = parseTime(p.ExpirationDateTime); err != nil {
		return nil, invalid("expirationDateTime", "%v", err)
	}

	if err := buildOptionalBase(p, ti); err != nil {
		return nil, err
	}
	if err := buildObservables(p, ti); err != nil {
		return nil, err
	}

	switch cats := ti.Categories(); len(cats) {
	case 0:
		return nil, invalid("", "at least one email, file, or network observable attribute must be supplied")
	case 1:
	default:
		return nil, invalid("", "observable attributes from multiple categories supplied (%v); exactly one category is allowed", cats)
	}

	return ti, nil
}

func buildOptionalBase(p Parameters, ti *domain.ThreatIndicator) error {
	ti.ActivityGroupNames = domain.ParseStringList(p.ActivityGroupNames)
	ti.AdditionalInformation = p.AdditionalInformation
	ti.ExternalID = p.ExternalID
	ti.KillChain = domain.ParseStringList(p.KillChain)
	ti.KnownFalsePositives = p.KnownFalsePositives
	ti.MalwareFamilyNames = domain.ParseStringList(p.MalwareFamilyNames)
	ti.Tags = domain.ParseStringList(p.Tags)

	var err error
	if ti.Confidence, err = parseInt32InRange(p.Confidence, 0, 100); err != nil {
		return invalid("confidence", "%v", err)
	}
	if ti.Severity, err = parseInt32InRange(p.Severity, 0, 5); err != nil {
		return invalid("severity", "%v", err)
	}
	if p.DiamondModel != "" {
		if ti.DiamondModel, err = domain.ParseDiamondModel(p.DiamondModel); err != nil {
			return invalid("diamondModel", "%v", err)
		}
	}
	if ti.IsActive, err = parseOptionalBool(p.IsActive); err != nil {
		return invalid("isActive", "%v", err)
	}
	if ti.PassiveOnly, err = parseOptionalBool(p.PassiveOnly); err != nil {
		return invalid("passiveOnly", "%v", err)
	}
	if ti.LastReportedDateTime, err = parseOptionalTime(p.LastReportedDateTime); err != nil {
		return invalid("lastReportedDateTime", "%v", err)
	}
	return nil
}

func buildObservables(p Parameters, ti *domain.ThreatIndicator) error {
	ti.EmailEncoding = p.EmailEncoding
	ti.EmailLanguage = p.EmailLanguage
	ti.EmailRecipient = p.EmailRecipient
	ti.EmailSenderAddress = p.EmailSenderAddress
	ti.EmailSenderName = p.EmailSenderName
	ti.EmailSourceDomain = p.EmailSourceDomain
	ti.EmailSourceIPAddress = p.EmailSourceIPAddress
	ti.EmailSubject = p.EmailSubject
	ti.EmailXMailer = p.EmailXMailer

	ti.FileHashValue = p.FileHashValue
	ti.FileMutexName = p.FileMutexName
	ti.FileName = p.FileName
	ti.FilePacker = p.FilePacker
	ti.FilePath = p.FilePath
	ti.FileType = p.FileType

	ti.DomainName = p.DomainName
	ti.NetworkCidrBlock = p.NetworkCidrBlock
	ti.NetworkDestinationCidrBlock = p.NetworkDestinationCidrBlock
	ti.NetworkDestinationIPv4 = p.NetworkDestinationIPv4
	ti.NetworkDestinationIPv6 = p.NetworkDestinationIPv6
	ti.NetworkIPv4 = p.NetworkIPv4
	ti.NetworkIPv6 = p.NetworkIPv6
	ti.NetworkSourceCidrBlock = p.NetworkSourceCidrBlock
	ti.NetworkSourceIPv4 = p.NetworkSourceIPv4
	ti.NetworkSourceIPv6 = p.NetworkSourceIPv6
	ti.URL = p.URL
	ti.UserAgent = p.UserAgent

	var err error
	if p.FileHashType != "" {
		if ti.FileHashType, err = domain.ParseFileHashType(p.FileHashType); err != nil {
			return invalid("fileHashType", "%v", err)
		}
	}
	if ti.FileCompileDateTime, err = parseOptionalTime(p.FileCompileDateTime); err != nil {
		return invalid("fileCompileDateTime", "%v", err)
	}
	if ti.FileCreatedDateTime, err = parseOptionalTime(p.FileCreatedDateTime); err != nil {
		return invalid("fileCreatedDateTime", "%v", err)
	}
	if ti.FileSize, err = parseOptionalInt64(p.FileSize); err != nil {
		return invalid("fileSize", "%v", err)
	}

	for _, attr := range []struct {
		name  string
		raw   string
		field **int32
	}{
		{"networkDestinationAsn", p.NetworkDestinationAsn, &ti.NetworkDestinationAsn},
		{"networkDestinationPort", p.NetworkDestinationPort, &ti.NetworkDestinationPort},
		{"networkPort", p.NetworkPort, &ti.NetworkPort},
		{"networkProtocol", p.NetworkProtocol, &ti.NetworkProtocol},
		{"networkSourceAsn", p.NetworkSourceAsn, &ti.NetworkSourceAsn},
		{"networkSourcePort", p.NetworkSourcePort, &ti.NetworkSourcePort},
	} {
		if *attr.field, err = parseOptionalInt32(attr.raw); err != nil {
			return invalid(attr.name, "%v", err)
		}
	}

	return nil
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	ts, err := parseTime(value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func parseOptionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", value)
	}
	return &parsed, nil
}

func parseOptionalInt32(value string) (*int32, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	result := int32(parsed)
	return &result, nil
}

func parseOptionalInt64(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	return &parsed, nil
}

func parseInt32InRange(value string, min, max int32) (*int32, error) {
	parsed, err := parseOptionalInt32(value)
	if err != nil || parsed == nil {
		return parsed, err
	}
	if *parsed < min || *parsed > max {
		return nil, fmt.Errorf("value %d outside allowed range [%d, %d]", *parsed, min, max)
	}
	return parsed, nil
}
