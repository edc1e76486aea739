// Package talentmatch provides a Go client for the talentmatch HTTP API.
//
//	client := talentmatch.New("http://localhost:8080",
//	    talentmatch.WithAPIKey("secret"),
//	)
//	jobID, _ := client.SubmitJob(ctx, talentmatch.JobRequest{
//	    Title:  "Backend Engineer",
//	    Skills: []string{"Go", "Redis"},
//	})
//	report, _ := client.Match(ctx, jobID)
//	for _, m := range report.Matches {
//	    fmt.Println(m.CandidateID, m.Scores.OverallScore)
//	}
package talentmatch
