package backend

import "encoding/xml"

// ResultList is the answer of /build/<project>/_result
type ResultList struct {
	XMLName xml.Name `xml:"resultlist"`
	State   string   `xml:"state,attr,omitempty"`
	Results []Result `xml:"result"`
}

type Result struct {
	Project    string        `xml:"project,attr"`
	Repository string        `xml:"repository,attr"`
	Arch       string        `xml:"arch,attr"`
	Code       string        `xml:"code,attr,omitempty"`
	State      string        `xml:"state,attr,omitempty"`
	Dirty      bool          `xml:"dirty,attr,omitempty"`
	Statuses   []BuildStatus `xml:"status"`
	Summary    *Summary      `xml:"summary"`
}

type BuildStatus struct {
	Package string `xml:"package,attr"`
	Code    string `xml:"code,attr"`
	Details string `xml:"details,omitempty"`
}

type Summary struct {
	StatusCounts []StatusCount `xml:"statuscount"`
}

type StatusCount struct {
	Code  string `xml:"code,attr"`
	Count int    `xml:"count,attr"`
}

// BuilddepInfo is the dependency graph of one repository/arch
type BuilddepInfo struct {
	XMLName  xml.Name          `xml:"builddepinfo"`
	Packages []BuilddepPackage `xml:"package"`
	Cycles   []Cycle           `xml:"cycle"`

	// Raw is the document as sent by the backend
	Raw []byte `xml:"-"`
}

type BuilddepPackage struct {
	Name    string   `xml:"name,attr"`
	Source  string   `xml:"source,omitempty"`
	PkgDeps []string `xml:"pkgdep"`
	Subpkgs []string `xml:"subpkg"`
}

type Cycle struct {
	Packages []string `xml:"package"`
}

type JobHistoryList struct {
	XMLName xml.Name     `xml:"jobhistlist"`
	Entries []JobHistory `xml:"jobhist"`

	// Raw is the document as sent by the backend
	Raw []byte `xml:"-"`
}

type JobHistory struct {
	Package    string `xml:"package,attr"`
	Repository string `xml:"repository,attr,omitempty"`
	Arch       string `xml:"arch,attr,omitempty"`
	Rev        string `xml:"rev,attr,omitempty"`
	SrcMD5     string `xml:"srcmd5,attr,omitempty"`
	VerifyMD5  string `xml:"verifymd5,attr,omitempty"`
	Code       string `xml:"code,attr"`
	ReadyTime  int64  `xml:"readytime,attr,omitempty"`
	StartTime  int64  `xml:"starttime,attr,omitempty"`
	EndTime    int64  `xml:"endtime,attr,omitempty"`
	WorkerID   string `xml:"workerid,attr,omitempty"`
	HostArch   string `xml:"hostarch,attr,omitempty"`
	Reason     string `xml:"reason,attr,omitempty"`
}

type SourceInfoList struct {
	XMLName     xml.Name     `xml:"sourceinfolist"`
	SourceInfos []SourceInfo `xml:"sourceinfo"`
}

type SourceInfo struct {
	Package    string       `xml:"package,attr"`
	Rev        string       `xml:"rev,attr,omitempty"`
	SrcMD5     string       `xml:"srcmd5,attr,omitempty"`
	VerifyMD5  string       `xml:"verifymd5,attr,omitempty"`
	ChangesMD5 string       `xml:"changesmd5,attr,omitempty"`
	MaxMTime   int64        `xml:"maxmtime,attr,omitempty"`
	Version    string       `xml:"version,omitempty"`
	Release    string       `xml:"release,omitempty"`
	Linked     []LinkedInfo `xml:"linked"`
	Error      string       `xml:"error,omitempty"`
}

type LinkedInfo struct {
	Project string `xml:"project,attr"`
	Package string `xml:"package,attr"`
}

type Directory struct {
	XMLName xml.Name         `xml:"directory"`
	Name    string           `xml:"name,attr,omitempty"`
	Rev     string           `xml:"rev,attr,omitempty"`
	SrcMD5  string           `xml:"srcmd5,attr,omitempty"`
	Entries []DirectoryEntry `xml:"entry"`
}

type DirectoryEntry struct {
	Name  string `xml:"name,attr"`
	MD5   string `xml:"md5,attr,omitempty"`
	Size  int64  `xml:"size,attr,omitempty"`
	MTime int64  `xml:"mtime,attr,omitempty"`
}

// HasEntry reports whether the directory lists the named file
func (d *Directory) HasEntry(name string) bool {
	for _, e := range d.Entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Status is the generic answer of commands and the body of error responses
type Status struct {
	XMLName xml.Name     `xml:"status"`
	Code    string       `xml:"code,attr"`
	Summary string       `xml:"summary,omitempty"`
	Details string       `xml:"details,omitempty"`
	Data    []StatusData `xml:"data"`
}

type StatusData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// DataValue returns the value of the named data element
func (s *Status) DataValue(name string) string {
	for _, d := range s.Data {
		if d.Name == name {
			return d.Value
		}
	}
	return ""
}
