package domain

import "fmt"

// Enumerated attribute values accepted by the Graph Security tiIndicators
// resource. The wire representation is the string value itself.

type Action string

const (
	ActionUnknown Action = "unknown"
	ActionAllow   Action = "allow"
	ActionBlock   Action = "block"
	ActionAlert   Action = "alert"
)

var actions = []Action{ActionUnknown, ActionAllow, ActionBlock, ActionAlert}

func ParseAction(value string) (Action, error) {
	for _, a := range actions {
		if string(a) == value {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid action %q (expected one of %v)", value, actions)
}

type TLPLevel string

const (
	TLPUnknown TLPLevel = "unknown"
	TLPWhite   TLPLevel = "white"
	TLPGreen   TLPLevel = "green"
	TLPAmber   TLPLevel = "amber"
	TLPRed     TLPLevel = "red"
)

var tlpLevels = []TLPLevel{TLPUnknown, TLPWhite, TLPGreen, TLPAmber, TLPRed}

func ParseTLPLevel(value string) (TLPLevel, error) {
	for _, l := range tlpLevels {
		if string(l) == value {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid tlpLevel %q (expected one of %v)", value, tlpLevels)
}

type ThreatType string

const (
	ThreatBotnet       ThreatType = "Botnet"
	ThreatC2           ThreatType = "C2"
	ThreatCryptoMining ThreatType = "CryptoMining"
	ThreatDarknet      ThreatType = "Darknet"
	ThreatDDoS         ThreatType = "DDoS"
	ThreatMaliciousUrl ThreatType = "MaliciousUrl"
	ThreatMalware      ThreatType = "Malware"
	ThreatPhishing     ThreatType = "Phishing"
	ThreatProxy        ThreatType = "Proxy"
	ThreatWatchList    ThreatType = "WatchList"
)

var threatTypes = []ThreatType{
	ThreatBotnet, ThreatC2, ThreatCryptoMining, ThreatDarknet, ThreatDDoS,
	ThreatMaliciousUrl, ThreatMalware, ThreatPhishing, ThreatProxy, ThreatWatchList,
}

func ParseThreatType(value string) (ThreatType, error) {
	for _, t := range threatTypes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid threatType %q (expected one of %v)", value, threatTypes)
}

type DiamondModel string

const (
	DiamondUnknown        DiamondModel = "unknown"
	DiamondAdversary      DiamondModel = "adversary"
	DiamondCapability     DiamondModel = "capability"
	DiamondInfrastructure DiamondModel = "infrastructure"
	DiamondVictim         DiamondModel = "victim"
)

var diamondModels = []DiamondModel{
	DiamondUnknown, DiamondAdversary, DiamondCapability, DiamondInfrastructure, DiamondVictim,
}

func ParseDiamondModel(value string) (DiamondModel, error) {
	for _, m := range diamondModels {
		if string(m) == value {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid diamondModel %q (expected one of %v)", value, diamondModels)
}

type FileHashType string

const (
	HashUnknown         FileHashType = "unknown"
	HashSHA1            FileHashType = "sha1"
	HashSHA256          FileHashType = "sha256"
	HashMD5             FileHashType = "md5"
	HashAuthenticode256 FileHashType = "authenticodeHash256"
	HashLS              FileHashType = "lsHash"
	HashCTPH            FileHashType = "ctph"
)

var fileHashTypes = []FileHashType{
	HashUnknown, HashSHA1, HashSHA256, HashMD5, HashAuthenticode256, HashLS, HashCTPH,
}

func ParseFileHashType(value string) (FileHashType, error) {
	for _, h := range fileHashTypes {
		if string(h) == value {
			return h, nil
		}
	}
	return "", fmt.Errorf("invalid fileHashType %q (expected one of %v)", value, fileHashTypes)
}
