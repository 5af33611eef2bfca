package utils

import "github.com/gofiber/fiber/v2"

const defaultPerPage = 10
const maxPerPage = 100

// Pagination parses ?page and ?per_page with sane bounds.
func Pagination(c *fiber.Ctx) (page, perPage int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage = c.QueryInt("per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// Offset converts a page/perPage pair to a query offset.
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
