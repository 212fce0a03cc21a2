// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the static topic table powering "also try"
// related-search suggestions. Each topic maps a canonical key and its
// aliases to an ordered list of suggestion strings.
package taxonomy

import (
	"github.com/meshintel/commandbrain/pkg/types"
)

// topics is ordered: earlier entries win exact-match resolution, and
// the order within each Related list is the display order.
var topics = []types.Topic{
	{
		Key:     "port scanning",
		Aliases: []string{"port scan", "network scan", "network scanning", "scanning"},
		Related: []string{"nmap", "masscan", "service detection", "os detection", "host discovery", "firewall evasion", "udp scan", "banner grabbing"},
	},
	{
		Key:     "brute force",
		Aliases: []string{"bruteforce", "brute-force", "password attack", "login attack"},
		Related: []string{"hydra", "password cracking", "wordlists", "john", "hashcat", "credential stuffing", "dictionary attack", "ssh brute force"},
	},
	{
		Key:     "password cracking",
		Aliases: []string{"password crack", "hash cracking", "hash crack", "crack password"},
		Related: []string{"john", "hashcat", "hydra", "wordlists", "rainbow tables", "gpu cracking", "hash identification", "crunch"},
	},
	{
		Key:     "web testing",
		Aliases: []string{"web hacking", "web pentest", "web security", "web app testing"},
		Related: []string{"burpsuite", "sqlmap", "nikto", "gobuster", "directory enumeration", "sql injection", "xss", "wpscan"},
	},
	{
		Key:     "sql injection",
		Aliases: []string{"sqli", "sql inject", "database attack"},
		Related: []string{"sqlmap", "burpsuite", "web testing", "database enumeration", "blind injection", "union injection"},
	},
	{
		Key:     "sniffing",
		Aliases: []string{"packet capture", "packet sniffing", "traffic analysis", "packet analysis"},
		Related: []string{"wireshark", "tcpdump", "pcap filters", "arp spoofing", "network monitoring", "protocol analysis"},
	},
	{
		Key:     "enumeration",
		Aliases: []string{"enum", "recon", "reconnaissance", "information gathering"},
		Related: []string{"enum4linux", "dnsenum", "nmap", "smb enumeration", "dns enumeration", "whois", "subdomain discovery", "gobuster"},
	},
	{
		Key:     "exploitation",
		Aliases: []string{"exploit", "exploits", "post exploitation"},
		Related: []string{"metasploit", "searchsploit", "msfvenom", "reverse shell", "payload generation", "privilege escalation", "meterpreter"},
	},
	{
		Key:     "wireless",
		Aliases: []string{"wifi", "wifi hacking", "wireless attack", "wpa"},
		Related: []string{"aircrack-ng", "monitor mode", "handshake capture", "deauthentication", "wps attacks", "evil twin"},
	},
	{
		Key:     "forensics",
		Aliases: []string{"digital forensics", "memory forensics", "disk forensics"},
		Related: []string{"autopsy", "volatility", "file carving", "memory dump", "timeline analysis", "disk imaging"},
	},
	{
		Key:     "tunneling",
		Aliases: []string{"pivoting", "port forwarding", "proxy"},
		Related: []string{"socat", "proxychains", "ssh tunneling", "netcat", "reverse shell", "chisel"},
	},
	{
		Key:     "wordlists",
		Aliases: []string{"wordlist", "dictionary", "password list"},
		Related: []string{"crunch", "cewl", "rockyou", "custom wordlists", "password cracking", "brute force"},
	},
	{
		Key:     "dns",
		Aliases: []string{"dns lookup", "domain lookup", "dns enumeration"},
		Related: []string{"dig", "nslookup", "dnsenum", "whois", "zone transfer", "subdomain discovery"},
	},
	{
		Key:     "file transfer",
		Aliases: []string{"transfer files", "copy files", "remote copy"},
		Related: []string{"scp", "rsync", "netcat", "sftp", "ssh", "http server"},
	},
	{
		Key:     "text processing",
		Aliases: []string{"text editing", "parsing", "text manipulation"},
		Related: []string{"awk", "sed", "grep", "cut", "sort", "regular expressions"},
	},
	{
		Key:     "processes",
		Aliases: []string{"process list", "running processes", "tasks"},
		Related: []string{"ps", "top", "htop", "kill", "pgrep", "systemctl"},
	},
}

// Topics returns the full taxonomy table in resolution order.
func Topics() []types.Topic {
	return topics
}
