package sentiment

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown to HTML and keeps only the text nodes.
func ConvertMarkdownToText(input string) string {
	html := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(RemoveLinks(input)), " ")
	}

	plainText := strings.Join(strings.Fields(doc.Text()), " ")
	return strings.Join(strings.Fields(RemoveLinks(plainText)), " ")
}
