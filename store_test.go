package main

import (
	"encoding/base64"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStoreCharacters(t *testing.T) {
	Convey("Given a freshly seeded store", t, func() {
		store := NewStore()

		Convey("Listing without filters returns every character sorted by ID", func() {
			all := store.ListCharacters("", "")
			So(len(all), ShouldBeGreaterThan, 5)
			for i := 1; i < len(all); i++ {
				So(all[i-1].ID, ShouldBeLessThan, all[i].ID)
			}
		})

		Convey("Role and team filters narrow the result", func() {
			coaches := store.ListCharacters(RoleCoach, "")
			So(len(coaches), ShouldBeGreaterThan, 0)
			for _, c := range coaches {
				So(c.Role, ShouldEqual, RoleCoach)
			}

			richmond := store.ListCharacters("", "afc-richmond")
			So(len(richmond), ShouldBeGreaterThan, 0)
			for _, c := range richmond {
				So(c.TeamID, ShouldEqual, "afc-richmond")
			}
		})

		Convey("Creating a duplicate ID is rejected", func() {
			err := store.CreateCharacter(&Character{ID: "ted-lasso", Name: "Ted Lasso"})
			So(err, ShouldEqual, errAlreadyExists)
		})

		Convey("Updates only touch the fields that were sent", func() {
			before, ok := store.GetCharacter("ted-lasso")
			So(ok, ShouldBeTrue)
			originalName := before.Name

			bg := "Former college football coach from Kansas"
			updated, err := store.UpdateCharacter("ted-lasso", &CharacterUpdate{Background: &bg})
			So(err, ShouldBeNil)
			So(updated.Background, ShouldEqual, bg)
			So(updated.Name, ShouldEqual, originalName)
		})

		Convey("Deleting twice reports not found the second time", func() {
			So(store.CreateCharacter(&Character{ID: "temp", Name: "Temp"}), ShouldBeNil)
			So(store.DeleteCharacter("temp"), ShouldBeNil)
			So(store.DeleteCharacter("temp"), ShouldEqual, errNotFound)
		})
	})
}

func TestStoreRosterAndCounts(t *testing.T) {
	Convey("Given a freshly seeded store", t, func() {
		store := NewStore()

		Convey("The Richmond roster only contains Richmond characters", func() {
			roster := store.TeamRoster("afc-richmond")
			So(len(roster), ShouldBeGreaterThan, 0)
			for _, c := range roster {
				So(c.TeamID, ShouldEqual, "afc-richmond")
			}
		})

		Convey("Counts mirror the collection sizes", func() {
			counts := store.Counts()
			So(counts["characters"], ShouldEqual, len(store.ListCharacters("", "")))
			So(counts["teams"], ShouldEqual, len(store.ListTeams("")))
			So(counts["webhooks"], ShouldEqual, 0)
		})
	})
}

func TestStoreWebhooks(t *testing.T) {
	Convey("Given a store with one registered webhook", t, func() {
		store := NewStore()
		wh := store.RegisterWebhook(&WebhookRegistration{
			URL:    "https://example.com/hooks",
			Events: []string{EventTypeMatchCompleted},
		})

		Convey("The endpoint gets generated credentials and starts active", func() {
			So(wh.ID, ShouldStartWith, "wh_")
			So(wh.Secret, ShouldStartWith, "whsec_")
			So(wh.Active, ShouldBeTrue)
		})

		Convey("The signing secret is 24 random bytes, never a zeroed buffer", func() {
			key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(wh.Secret, "whsec_"))
			So(err, ShouldBeNil)
			So(key, ShouldHaveLength, 24)
			So(key, ShouldNotResemble, make([]byte, 24))
		})

		Convey("It is retrievable by ID and present in the listing", func() {
			got, ok := store.GetWebhook(wh.ID)
			So(ok, ShouldBeTrue)
			So(got.URL, ShouldEqual, "https://example.com/hooks")
			So(store.ListWebhooks(), ShouldHaveLength, 1)
		})

		Convey("Deleting it empties the listing", func() {
			So(store.DeleteWebhook(wh.ID), ShouldBeNil)
			So(store.ListWebhooks(), ShouldBeEmpty)
			So(store.DeleteWebhook(wh.ID), ShouldEqual, errNotFound)
		})
	})
}

func TestPaginate(t *testing.T) {
	Convey("Given a 45-item collection", t, func() {
		items := make([]int, 45)
		for i := range items {
			items[i] = i
		}

		Convey("The default page size is 20", func() {
			page := paginate(items, 0, 0)
			So(page.Items.([]int), ShouldHaveLength, 20)
			So(page.Total, ShouldEqual, 45)
			So(page.Page, ShouldEqual, 1)
			So(page.Pages, ShouldEqual, 3)
			So(page.HasMore, ShouldBeTrue)
		})

		Convey("The last page is short and reports has_more false", func() {
			page := paginate(items, 40, 20)
			So(page.Items.([]int), ShouldHaveLength, 5)
			So(page.Page, ShouldEqual, 3)
			So(page.HasMore, ShouldBeFalse)
		})

		Convey("Skip beyond the end yields an empty page, not a panic", func() {
			page := paginate(items, 500, 10)
			So(page.Items.([]int), ShouldBeEmpty)
			So(page.Total, ShouldEqual, 45)
		})

		Convey("Limit is capped at 100 and negative skip is treated as zero", func() {
			page := paginate(items, -3, 9999)
			So(page.Items.([]int), ShouldHaveLength, 45)
			So(page.HasMore, ShouldBeFalse)
		})
	})
}

func TestSlugify(t *testing.T) {
	Convey("slugify turns display names into URL-safe IDs", t, func() {
		So(slugify("Ted Lasso"), ShouldEqual, "ted-lasso")
		So(slugify("Dani Rojas!"), ShouldEqual, "dani-rojas")
		So(slugify("  A.F.C.  Richmond  "), ShouldEqual, "a-f-c-richmond")
		So(slugify("Coach Beard 2"), ShouldEqual, "coach-beard-2")

		Convey("A name with no usable characters falls back to a random ID", func() {
			So(strings.HasPrefix(slugify("!!!"), "item-"), ShouldBeTrue)
		})
	})
}
