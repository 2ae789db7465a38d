/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endpoint

import (
	"crypto/x509"
	"encoding/pem"
	"strings"
)

const (
	grpcScheme  = "grpc://"
	grpcsScheme = "grpcs://"
)

// IsTLSEnabled reports whether the URL carries a secure scheme (https or grpcs)
func IsTLSEnabled(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, grpcsScheme)
}

// ToAddress trims the grpc or grpcs scheme from the URL. Other URLs are
// returned unchanged.
func ToAddress(url string) string {
	for _, scheme := range []string{grpcScheme, grpcsScheme} {
		if strings.HasPrefix(url, scheme) {
			return strings.TrimPrefix(url, scheme)
		}
	}
	return url
}

// AttemptSecured reports whether a secured connection should be established:
//  secure scheme (e.g. grpcs://): true
//  any other scheme: false
//  no scheme: !allowInsecure
func AttemptSecured(url string, allowInsecure bool) bool {
	idx := strings.Index(url, "://")
	if idx < 0 {
		return !allowInsecure
	}
	return strings.HasSuffix(strings.ToLower(url[:idx]), "s")
}

// CertsFromPEM parses every CERTIFICATE block of the given PEM data.
// Blocks that carry headers or fail to parse are skipped.
func CertsFromPEM(pemCertsList ...[]byte) []*x509.Certificate {
	var certs []*x509.Certificate
	for _, pemCerts := range pemCertsList {
		for len(pemCerts) > 0 {
			var block *pem.Block
			block, pemCerts = pem.Decode(pemCerts)
			if block == nil {
				break
			}
			if block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
				continue
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				continue
			}
			certs = append(certs, cert)
		}
	}
	return certs
}
