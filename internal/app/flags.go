package app

import (
	"flag"

	"tisubmit/internal/indicator"
)

// registerIndicatorFlags binds every indicator attribute to a flag named
// after its wire-level attribute name. All values stay raw strings; parsing
// and validation happen in indicator.Build. In CSV mode the same flags act
// as defaults for columns a row leaves blank.
func registerIndicatorFlags(p *indicator.Parameters) {
	// Required base attributes.
	flag.StringVar(&p.Action, "action", "", "Action to apply (unknown, allow, block, alert)")
	flag.StringVar(&p.Description, "description", "", "Description of the indicator (max 100 characters)")
	flag.StringVar(&p.ExpirationDateTime, "expirationDateTime", "", "When the indicator expires (RFC 3339 or YYYY-MM-DD)")
	flag.StringVar(&p.TargetProduct, "targetProduct", "", "Security product the indicator targets (defaults from config)")
	flag.StringVar(&p.ThreatType, "threatType", "", "Threat type (Botnet, C2, CryptoMining, Darknet, DDoS, MaliciousUrl, Malware, Phishing, Proxy, WatchList)")
	flag.StringVar(&p.TLPLevel, "tlpLevel", "", "Traffic Light Protocol level (unknown, white, green, amber, red)")

	// Optional base attributes.
	flag.StringVar(&p.ActivityGroupNames, "activityGroupNames", "", "Comma-separated activity group names")
	flag.StringVar(&p.AdditionalInformation, "additionalInformation", "", "Free-form additional information")
	flag.StringVar(&p.Confidence, "confidence", "", "Confidence 0-100")
	flag.StringVar(&p.DiamondModel, "diamondModel", "", "Diamond model area (unknown, adversary, capability, infrastructure, victim)")
	flag.StringVar(&p.ExternalID, "externalId", "", "Identifier from the source system")
	flag.StringVar(&p.IsActive, "isActive", "", "Whether the indicator is active (true/false)")
	flag.StringVar(&p.KillChain, "killChain", "", "Comma-separated kill chain phases")
	flag.StringVar(&p.KnownFalsePositives, "knownFalsePositives", "", "Scenarios in which the indicator may be a false positive")
	flag.StringVar(&p.LastReportedDateTime, "lastReportedDateTime", "", "When the indicator was last reported")
	flag.StringVar(&p.MalwareFamilyNames, "malwareFamilyNames", "", "Comma-separated malware family names")
	flag.StringVar(&p.PassiveOnly, "passiveOnly", "", "Whether triggers stay invisible to the end user (true/false)")
	flag.StringVar(&p.Severity, "severity", "", "Severity 0-5")
	flag.StringVar(&p.Tags, "tags", "", "Comma-separated tags")

	// Email observable.
	flag.StringVar(&p.EmailEncoding, "emailEncoding", "", "Email body encoding")
	flag.StringVar(&p.EmailLanguage, "emailLanguage", "", "Email language")
	flag.StringVar(&p.EmailRecipient, "emailRecipient", "", "Email recipient address")
	flag.StringVar(&p.EmailSenderAddress, "emailSenderAddress", "", "Email sender address")
	flag.StringVar(&p.EmailSenderName, "emailSenderName", "", "Email sender display name")
	flag.StringVar(&p.EmailSourceDomain, "emailSourceDomain", "", "Email source domain")
	flag.StringVar(&p.EmailSourceIPAddress, "emailSourceIpAddress", "", "Email source IP address")
	flag.StringVar(&p.EmailSubject, "emailSubject", "", "Email subject line")
	flag.StringVar(&p.EmailXMailer, "emailXMailer", "", "Email X-Mailer header value")

	// File observable.
	flag.StringVar(&p.FileCompileDateTime, "fileCompileDateTime", "", "When the file was compiled")
	flag.StringVar(&p.FileCreatedDateTime, "fileCreatedDateTime", "", "When the file was created")
	flag.StringVar(&p.FileHashType, "fileHashType", "", "Hash type (unknown, sha1, sha256, md5, authenticodeHash256, lsHash, ctph)")
	flag.StringVar(&p.FileHashValue, "fileHashValue", "", "File hash value")
	flag.StringVar(&p.FileMutexName, "fileMutexName", "", "Mutex name used by the file")
	flag.StringVar(&p.FileName, "fileName", "", "File name")
	flag.StringVar(&p.FilePacker, "filePacker", "", "Packer used to build the file")
	flag.StringVar(&p.FilePath, "filePath", "", "File path")
	flag.StringVar(&p.FileSize, "fileSize", "", "File size in bytes")
	flag.StringVar(&p.FileType, "fileType", "", "File type")

	// Network observable.
	flag.StringVar(&p.DomainName, "domainName", "", "Domain name")
	flag.StringVar(&p.NetworkCidrBlock, "networkCidrBlock", "", "CIDR block")
	flag.StringVar(&p.NetworkDestinationAsn, "networkDestinationAsn", "", "Destination autonomous system number")
	flag.StringVar(&p.NetworkDestinationCidrBlock, "networkDestinationCidrBlock", "", "Destination CIDR block")
	flag.StringVar(&p.NetworkDestinationIPv4, "networkDestinationIPv4", "", "Destination IPv4 address")
	flag.StringVar(&p.NetworkDestinationIPv6, "networkDestinationIPv6", "", "Destination IPv6 address")
	flag.StringVar(&p.NetworkDestinationPort, "networkDestinationPort", "", "Destination port")
	flag.StringVar(&p.NetworkIPv4, "networkIPv4", "", "IPv4 address")
	flag.StringVar(&p.NetworkIPv6, "networkIPv6", "", "IPv6 address")
	flag.StringVar(&p.NetworkPort, "networkPort", "", "Port")
	flag.StringVar(&p.NetworkProtocol, "networkProtocol", "", "IP protocol number")
	flag.StringVar(&p.NetworkSourceAsn, "networkSourceAsn", "", "Source autonomous system number")
	flag.StringVar(&p.NetworkSourceCidrBlock, "networkSourceCidrBlock", "", "Source CIDR block")
	flag.StringVar(&p.NetworkSourceIPv4, "networkSourceIPv4", "", "Source IPv4 address")
	flag.StringVar(&p.NetworkSourceIPv6, "networkSourceIPv6", "", "Source IPv6 address")
	flag.StringVar(&p.NetworkSourcePort, "networkSourcePort", "", "Source port")
	flag.StringVar(&p.URL, "url", "", "URL")
	flag.StringVar(&p.UserAgent, "userAgent", "", "User agent observed in the request")
}
