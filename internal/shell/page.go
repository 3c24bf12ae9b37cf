package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MountedAttr marks the mount element after a fragment was attached.
const MountedAttr = "data-surveyform-mounted"

// FragmentFunc renders the markup attached to the mount element.
type FragmentFunc func(ctx context.Context) ([]byte, error)

// Page mounts a rendered fragment into an HTML host page.
type Page struct {
	Host    io.Reader
	MountID string
	Render  FragmentFunc
	Out     io.Writer
}

var _ Target = Page{}

// Name implements Target.
func (p Page) Name() string { return "page#" + p.mountID() }

// Mount locates the mount element before rendering so a missing mount point
// produces no output at all.
func (p Page) Mount(ctx context.Context) error {
	if p.Host == nil || p.Render == nil || p.Out == nil {
		return fmt.Errorf("shell: page mount requires host, renderer and output")
	}

	doc, mount, err := locate(p.Host, p.mountID())
	if err != nil {
		return err
	}
	fragment, err := p.Render(ctx)
	if err != nil {
		return fmt.Errorf("shell: render fragment: %w", err)
	}
	return attach(doc, mount, fragment, p.Out)
}

func (p Page) mountID() string {
	if id := strings.TrimSpace(p.MountID); id != "" {
		return id
	}
	return DefaultMountID
}

// MountPage parses page, attaches fragment as the only children of the element
// whose id is mountID and writes the resulting document to w.
func MountPage(page io.Reader, mountID string, fragment []byte, w io.Writer) error {
	doc, mount, err := locate(page, mountID)
	if err != nil {
		return err
	}
	return attach(doc, mount, fragment, w)
}

// HostPage returns a minimal standalone page with an empty mount element.
func HostPage(title, mountID string) []byte {
	if mountID == "" {
		mountID = DefaultMountID
	}
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	buf.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString("<div id=\"" + html.EscapeString(mountID) + "\"></div>\n")
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes()
}

func locate(page io.Reader, mountID string) (*html.Node, *html.Node, error) {
	doc, err := html.Parse(page)
	if err != nil {
		return nil, nil, fmt.Errorf("shell: parse host page: %w", err)
	}

	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, "id") == mountID {
			matches = append(matches, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	switch len(matches) {
	case 0:
		return nil, nil, fmt.Errorf("%w: no element with id %q", ErrMountPointMissing, mountID)
	case 1:
	default:
		return nil, nil, fmt.Errorf("%w: %d elements with id %q", ErrAmbiguousMountPoint, len(matches), mountID)
	}

	mount := matches[0]
	if hasAttr(mount, MountedAttr) {
		return nil, nil, fmt.Errorf("%w: element %q", ErrAlreadyMounted, mountID)
	}
	return doc, mount, nil
}

func attach(doc, mount *html.Node, fragment []byte, w io.Writer) error {
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     mount.Data,
		DataAtom: atom.Lookup([]byte(mount.Data)),
	})
	if err != nil {
		return fmt.Errorf("shell: parse fragment: %w", err)
	}

	for c := mount.FirstChild; c != nil; {
		next := c.NextSibling
		mount.RemoveChild(c)
		c = next
	}
	for _, node := range nodes {
		mount.AppendChild(node)
	}
	mount.Attr = append(mount.Attr, html.Attribute{Key: MountedAttr, Val: "true"})

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("shell: write page: %w", err)
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}
