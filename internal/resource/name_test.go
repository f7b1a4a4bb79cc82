package resource

import "testing"

func TestLocationName(t *testing.T) {
	type args struct {
		projectID  string
		locationID string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "success",
			args: args{
				projectID:  "test-project",
				locationID: "us-central1",
			},
			want: "projects/test-project/locations/us-central1",
		},
		{
			name: "empty location falls back to global",
			args: args{
				projectID: "test-project",
			},
			want: "projects/test-project/locations/global",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocationName(tt.args.projectID, tt.args.locationID); got != tt.want {
				t.Errorf("LocationName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlossaryName(t *testing.T) {
	type args struct {
		projectID  string
		locationID string
		glossaryID string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "success",
			args: args{
				projectID:  "test-project",
				locationID: "us-central1",
				glossaryID: "test-glossary",
			},
			want: "projects/test-project/locations/us-central1/glossaries/test-glossary",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlossaryName(tt.args.projectID, tt.args.locationID, tt.args.glossaryID); got != tt.want {
				t.Errorf("GlossaryName() = %v, want %v", got, tt.want)
			}
		})
	}
}
