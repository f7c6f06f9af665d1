package jdk

import (
	"fmt"
	"net/url"

	"jeka/pkg/platform"
)

// DefaultDiscoBaseURL is the discovery service answering versioned JDK
// download requests.
const DefaultDiscoBaseURL = "https://api.foojay.io/disco/v3.0"

// discoURL builds the direct download URL for one runtime build. The
// service streams the archive itself, so no response parsing is needed.
func discoURL(base string, plat platform.Descriptor, distrib, version string) string {
	return fmt.Sprintf(
		"%s/directuris?distro=%s&javafx_bundled=false&libc_type=%s&archive_type=%s&operating_system=%s&package_type=jdk&architecture=%s&latest=available&version=%s",
		base,
		url.QueryEscape(distrib),
		url.QueryEscape(plat.LibC),
		url.QueryEscape(plat.ArchiveExt),
		url.QueryEscape(string(plat.OS)),
		url.QueryEscape(string(plat.Arch)),
		url.QueryEscape(version),
	)
}
