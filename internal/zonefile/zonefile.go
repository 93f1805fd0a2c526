/*
 * Zonefile - zone file export.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package zonefile

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"dns-tenant-gateway/internal/model"
)

// Export renders the record sets of a zone as a zone file. Alias record sets
// have no zone file representation and are written as comments.
func Export(zoneName string, sets []model.RecordSet) (string, error) {
	origin := dns.Fqdn(zoneName)
	var zoneBuilder strings.Builder
	fmt.Fprint(&zoneBuilder, ";; Exported by dns-tenant-gateway\n")
	fmt.Fprintf(&zoneBuilder, "$ORIGIN %s\n", origin)
	for _, rs := range sets {
		name := dns.Fqdn(rs.Name)
		if rs.AliasTarget != nil {
			fmt.Fprintf(&zoneBuilder, "; %s %s ALIAS %s\n", name, rs.Type, dns.Fqdn(rs.AliasTarget.DNSName))
			continue
		}
		for _, value := range rs.Values() {
			rr, err := dns.NewRR(fmt.Sprintf("%s %d IN %s %s", name, rs.TTL, rs.Type, value))
			if err != nil {
				return "", fmt.Errorf("cannot export %s record %s: %w", rs.Type, name, err)
			}
			if rr == nil {
				continue
			}
			fmt.Fprintf(&zoneBuilder, "%s\n", rr.String())
		}
	}
	return zoneBuilder.String(), nil
}
