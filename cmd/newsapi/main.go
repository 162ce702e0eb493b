// Command newsapi serves the news REST API and manages its database.
//
//	@title			News API
//	@version		1.0
//	@description	Read articles, topics and users; vote on articles; post and delete comments.
//	@BasePath		/api
package main

import "github.com/tbourn/go-news-api/cmd/newsapi/commands"

func main() {
	commands.Execute()
}
