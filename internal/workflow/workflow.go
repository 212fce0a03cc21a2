// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow holds the static multi-step guides shown by the
// chain command. Each guide walks through a task as an ordered list of
// commands with purpose, what to look for, and tips.
package workflow

import (
	"sort"
	"strings"

	"github.com/meshintel/commandbrain/pkg/types"
)

var workflows = []types.Workflow{
	{
		Name:        "recon",
		Title:       "Network Reconnaissance",
		Description: "Map a target network: find live hosts, open ports, and running services.",
		Steps: []types.WorkflowStep{
			{
				Command: "nmap -sn 192.168.1.0/24",
				Purpose: "Ping sweep to find live hosts",
				LookFor: "Hosts reported as 'up' with their IP and MAC addresses",
				Tips:    "Use -sn to skip port scanning on the first pass",
			},
			{
				Command: "nmap -sV -sC -oA initial <target>",
				Purpose: "Service and version detection on a chosen host",
				LookFor: "Open ports, service banners, and default script findings",
				Tips:    "-oA saves all output formats for later reference",
			},
			{
				Command: "nmap -p- -T4 <target>",
				Purpose: "Full port sweep to catch services on unusual ports",
				LookFor: "Ports missed by the default top-1000 scan",
			},
			{
				Command: "whatweb http://<target>",
				Purpose: "Fingerprint any web services found",
				LookFor: "Server software, frameworks, and CMS identification",
			},
		},
	},
	{
		Name:        "web",
		Title:       "Web Application Assessment",
		Description: "Work through a web target from discovery to injection testing.",
		Steps: []types.WorkflowStep{
			{
				Command: "gobuster dir -u http://<target> -w /usr/share/wordlists/dirb/common.txt",
				Purpose: "Discover hidden directories and files",
				LookFor: "Status 200/301 paths, admin panels, backup files",
				Tips:    "Add -x php,txt,bak to check common extensions",
			},
			{
				Command: "nikto -h http://<target>",
				Purpose: "Scan the server for known issues and misconfigurations",
				LookFor: "Outdated software, dangerous files, missing headers",
			},
			{
				Command: "burpsuite",
				Purpose: "Proxy the application and map its requests",
				LookFor: "Parameters, cookies, and hidden form fields worth testing",
				Tips:    "Browse the whole app first so the site map is complete",
			},
			{
				Command: "sqlmap -u 'http://<target>/page?id=1' --batch",
				Purpose: "Test identified parameters for SQL injection",
				LookFor: "Injectable parameters and database type",
				Tips:    "Feed it a saved Burp request with -r for authenticated pages",
			},
		},
	},
	{
		Name:        "password",
		Title:       "Password Attack",
		Description: "Build a wordlist and run it against captured hashes or a live login.",
		Steps: []types.WorkflowStep{
			{
				Command: "cewl -d 2 -m 5 http://<target> -w custom.txt",
				Purpose: "Build a target-specific wordlist from their website",
				LookFor: "Organization names, product names, jargon",
			},
			{
				Command: "john --wordlist=custom.txt hashes.txt",
				Purpose: "Try the custom list against captured hashes",
				LookFor: "Cracked entries printed as they are found",
				Tips:    "Run john --show afterward to list everything cracked",
			},
			{
				Command: "hashcat -m 1000 ntlm.txt rockyou.txt -r rules/best64.rule",
				Purpose: "GPU attack with rule-based mutations",
				LookFor: "Status line showing recovered hash count",
				Tips:    "Match -m to the hash type; hashcat --example-hashes helps",
			},
			{
				Command: "hydra -l admin -P custom.txt ssh://<target>",
				Purpose: "Online attack against a live service",
				LookFor: "Valid credential pairs highlighted in the output",
				Tips:    "Keep -t low to avoid lockouts and noise",
			},
		},
	},
	{
		Name:        "traffic",
		Title:       "Traffic Capture and Analysis",
		Description: "Capture packets on the wire and dig into them offline.",
		Steps: []types.WorkflowStep{
			{
				Command: "tcpdump -i eth0 -w capture.pcap",
				Purpose: "Record traffic on the interface to a file",
				LookFor: "Packet count climbing; stop with CTRL+C",
				Tips:    "Add a filter like 'port 80' to keep the file small",
			},
			{
				Command: "wireshark -r capture.pcap",
				Purpose: "Inspect the capture with display filters",
				LookFor: "Cleartext credentials, unusual destinations, odd protocols",
				Tips:    "'Follow TCP Stream' reassembles full conversations",
			},
			{
				Command: "tcpdump -r capture.pcap 'tcp port 21'",
				Purpose: "Quick command-line pass over a protocol of interest",
				LookFor: "FTP logins and file transfers in cleartext",
			},
		},
	},
}

// All returns every workflow, ordered by name.
func All() []types.Workflow {
	out := make([]types.Workflow, len(workflows))
	copy(out, workflows)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Find returns the workflow with the given name, case-insensitive.
func Find(name string) (types.Workflow, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, w := range workflows {
		if strings.ToLower(w.Name) == n {
			return w, true
		}
	}
	return types.Workflow{}, false
}
