package fetch

import (
	"net/url"
	"strings"
)

// Platform is a recognized job board.
type Platform string

const (
	// PlatformLinkedIn renders postings client-side and needs the browser.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformBuiltIn is the BuiltIn network of regional boards.
	PlatformBuiltIn Platform = "builtin"
	// PlatformRemoteOK is the RemoteOK board.
	PlatformRemoteOK Platform = "remoteok"
	// PlatformWellfound is Wellfound (formerly AngelList Talent).
	PlatformWellfound Platform = "wellfound"
	// PlatformUnknown is any unrecognized host.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(host, "builtin"):
		return PlatformBuiltIn
	case strings.Contains(host, "remoteok.com"), strings.Contains(host, "remoteok.io"):
		return PlatformRemoteOK
	case strings.Contains(host, "wellfound.com"), strings.Contains(host, "angel.co"):
		return PlatformWellfound
	default:
		return PlatformUnknown
	}
}

// NeedsBrowser reports whether the platform requires headless rendering to
// see the posting body.
func NeedsBrowser(platform Platform) bool {
	return platform == PlatformLinkedIn || platform == PlatformWellfound
}

// PlatformContentSelectors returns description selectors for a platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".jobs-description__content",
			".description__text",
			".show-more-less-html__markup",
			"#job-details",
			".jobs-box__html-content",
		}
	case PlatformBuiltIn:
		return []string{
			".job-description",
			"[data-id='job-description']",
			".job-info",
			"main",
		}
	case PlatformRemoteOK:
		return []string{
			".description",
			".markdown",
			"td.company_and_position",
			"main",
		}
	case PlatformWellfound:
		return []string{
			"[data-test='JobDescription']",
			".job-description",
			".styles_description",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns elements to strip before text extraction.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".application-form",
		".apply-button-container",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".gdpr-notice",
		".eeo-statement",
		".voluntary-disclosure",
	}

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".similar-jobs",
			".jobs-ppc-criteria",
			".top-card-layout__cta-container",
			".sign-in-modal",
		)
	case PlatformRemoteOK:
		return append(common,
			".tooltip",
			".action-apply",
		)
	case PlatformWellfound:
		return append(common,
			"[data-test='JobApplication']",
			".similar-listings",
		)
	default:
		return common
	}
}
