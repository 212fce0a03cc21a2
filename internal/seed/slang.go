// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package seed

// SlangTags maps entry names to the purpose-based and slang search
// terms the enrich command appends to their tag fields. These make the
// catalog searchable by intent ("crack password", "where am i") rather
// than only by command name.
var SlangTags = map[string]string{
	"ls":    "list, listing, show files, see files, what files, dir, directory, view files",
	"cd":    "change dir, go to, navigate, move to, switch folder, goto",
	"pwd":   "where am i, current location, current directory, print directory, path",
	"mkdir": "make folder, create folder, new folder, make directory, new dir",
	"rm":    "delete, remove, erase, del, destroy, delete file, remove file",
	"cp":    "copy, duplicate, backup, clone",
	"mv":    "move, rename, relocate, transfer",
	"cat":   "read, view, show, display, print, see file, open file",
	"grep":  "search, find text, search text, find in file, pattern search, filter, regex, regular expression",
	"find":  "search files, locate, find file, file search, where is, locate file",

	"chmod": "permissions, change permissions, file permissions, access, rights, executable, make executable",
	"chown": "owner, ownership, change owner, file owner",

	"top": "processes, cpu, memory, performance, running, tasks, resource usage, what's running",
	"ps":  "processes, running, tasks, process list, show processes",
	"df":  "disk, disk space, storage, free space, how much space, disk usage",

	"ping":     "test connection, check connection, reachability, alive, test network, can i reach, connectivity, test ping",
	"ifconfig": "ip address, my ip, network config, interface, network card, nic",
	"ip":       "ip address, my ip, network, routing, interface, network config",
	"netstat":  "connections, ports, network connections, listening, open ports, network status",
	"ss":       "sockets, connections, ports, listening, open ports, network",

	"sudo":   "root, admin, administrator, superuser, privilege, elevated, run as admin, permission",
	"passwd": "password, change password, set password, pw, reset password",

	"apt": "install, software, package, program, application, update, upgrade",

	"systemctl": "service, daemon, start, stop, restart, enable, disable",
	"shutdown":  "reboot, restart, power off, turn off, halt",

	"awk": "text processing, columns, fields, parse, extract",
	"sed": "replace, substitute, edit, text edit, find replace, stream editor",

	"tar": "compress, archive, zip, extract, unzip, backup, package",

	"ssh": "remote, remote login, secure shell, connect, remote access, login remotely",
	"scp": "copy, transfer, file transfer, secure copy, send file, remote copy",

	"nmap":    "scan, scanning, port scan, network scan, reconnaissance, recon, enum, enumeration, discovery, find hosts, find ports, service detection, port scanner, network scanner, probe",
	"masscan": "fast scan, speed scan, quick scan, port scan, network scan, scanning, mass scanning",

	"burpsuite": "web test, web testing, web hacking, web pentest, web proxy, intercepting proxy, http proxy, https proxy, web security, web app, webapp, intercept, proxy",
	"sqlmap":    "sql injection, sqli, sql inject, database hack, db hack, sql attack, inject sql, sql vuln, database attack, automated sql",
	"nikto":     "web scan, website scan, web vulnerability, web vuln, web scanner, site scan, vulnerability scanner",
	"dirb":      "directory, dir scan, directory brute force, dir bruteforce, hidden directories, find directories, web directories, directory enumeration",
	"gobuster":  "directory, dir scan, brute force, bruteforce, enumeration, enum, hidden files, find directories, directory discovery, subdomain, vhost",

	"metasploit":   "exploit, exploiting, exploitation, framework, payload, shell, reverse shell, meterpreter, post exploitation, post-exploitation, msf, msfconsole",
	"searchsploit": "exploit, exploit search, find exploit, vulnerability, cve, exploit database, exploit-db",

	"hydra":   "brute force, bruteforce, brute-force, brute forcing, password attack, password crack, password cracking, login attack, credential attack, breaking passwords, crack login, crack password, dictionary attack, password guess, pw crack",
	"john":    "password crack, password cracking, hash crack, hash cracking, crack hash, break password, john the ripper, jtr, password recovery, pw crack, hash breaking",
	"hashcat": "hash crack, hash cracking, password crack, password cracking, gpu crack, fast crack, crack hash, break hash, hash breaking, pw crack",

	"aircrack-ng": "wifi hack, wifi crack, wireless hack, wireless crack, wpa crack, wep crack, wifi security, wireless security, crack wifi, break wifi",

	"wireshark": "packet capture, packet sniffing, sniff, sniffer, network monitor, traffic analysis, pcap, packet analyzer, capture traffic, see traffic, network traffic",
	"tcpdump":   "packet capture, sniff, sniffer, capture, network capture, traffic capture, dump traffic, capture packets",

	"enum4linux": "enumeration, enum, smb enum, windows enum, share enumeration, samba enum",
	"dnsenum":    "dns, dns enumeration, dns enum, subdomain, subdomain enum, dns recon",

	"netcat": "nc, swiss army knife, reverse shell, bind shell, file transfer, port forward, banner grab, listener, connect back",

	"openvas": "vulnerability scan, vuln scan, security scan, scan for vulns, find vulnerabilities",

	"gdb": "debugger, debugging, reverse engineering, reversing, disassemble",

	"autopsy":    "forensics, digital forensics, disk analysis, file recovery, investigate",
	"volatility": "memory forensics, memory analysis, ram analysis, memory dump",

	"wpscan":  "wordpress, wp scan, wordpress scan, cms scan",
	"whatweb": "fingerprint, website fingerprint, identify cms, web fingerprint",

	"whois":      "domain info, domain information, registration, owner, who owns, domain lookup, dns info",
	"nslookup":   "dns, dns lookup, resolve, ip lookup, domain lookup",
	"dig":        "dns, dns query, dns lookup, domain lookup, resolve",
	"traceroute": "route, path, trace, network path, hops, routing",

	"msfvenom": "payload, payload generation, reverse shell, meterpreter, generate payload, create payload, shellcode",

	"setoolkit": "social engineering, phishing, clone site, fake site, credential harvest",

	"crunch": "wordlist, password list, generate wordlist, custom wordlist, dictionary",
	"cewl":   "wordlist, web wordlist, scrape wordlist, generate wordlist from website",

	"socat":       "relay, forward, tunnel, port forward, reverse shell",
	"proxychains": "proxy, tunnel, anonymity, chain, route through proxy, hide ip",
}
