package resource

import "fmt"

const DefaultLocationID = "global"

func LocationName(projectID, locationID string) string {
	if locationID == "" {
		locationID = DefaultLocationID
	}
	return fmt.Sprintf("projects/%s/locations/%s", projectID, locationID)
}

func GlossaryName(projectID, locationID, glossaryID string) string {
	return fmt.Sprintf("%s/glossaries/%s", LocationName(projectID, locationID), glossaryID)
}
