package play

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustSegments(t *testing.T, play string, n int) []*Segment {
	t.Helper()
	desc := Parse(play)
	if desc.IsError {
		t.Fatalf("Parse(%q) failed: %s", play, desc.Err())
	}
	if len(desc.Segments) != n {
		t.Fatalf("Parse(%q) got %d segments, want %d:\n%v", play, len(desc.Segments), n, desc)
	}
	for i, seg := range desc.Segments {
		if i == len(desc.Segments)-1 && !seg.Done {
			t.Errorf("final segment not done: %v", seg)
		}
	}
	return desc.Segments
}

func wantString(t *testing.T, field string, got *string, want string) {
	t.Helper()
	if got == nil {
		t.Errorf("%s = <absent>, want %q", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %q, want %q", field, *got, want)
	}
}

func wantBool(t *testing.T, field string, got *bool, want bool) {
	t.Helper()
	if got == nil {
		t.Errorf("%s = <absent>, want %v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}

func wantInt(t *testing.T, field string, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Errorf("%s = <absent>, want %v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}

func wantYardline(t *testing.T, field string, got *Yardline, want Yardline) {
	t.Helper()
	if got == nil {
		t.Errorf("%s = <absent>, want %v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}

func wantType(t *testing.T, seg *Segment, want SegmentType) {
	t.Helper()
	if seg.Type != want {
		t.Errorf("type = %q, want %q (%v)", seg.Type, want, seg)
	}
}

func TestParse_Run(t *testing.T) {
	desc := Parse("(12:34) J.Smith runs to SEA 45 for 12 yards.")
	if desc.IsError {
		t.Fatalf("unexpected error: %s", desc.Err())
	}
	if len(desc.Segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(desc.Segments))
	}
	seg := desc.Segments[0]
	wantType(t, seg, TypeRun)
	wantString(t, "primary_name", seg.PrimaryName, "J.Smith")
	wantYardline(t, "end_yardline", seg.EndYardline, TeamYardline("SEA", 45))
	if !seg.Done {
		t.Error("segment should be done")
	}
	if desc.Clock == nil || *desc.Clock != (Clock{Minutes: 12, Seconds: 34}) {
		t.Errorf("clock = %v, want 12:34", desc.Clock)
	}
}

func TestParse_Penalty(t *testing.T) {
	seg := mustSegments(t, "PENALTY on SEA-J.Smith False Start, 5 yards, enforced at SEA 20.", 1)[0]
	wantType(t, seg, TypePenalty)
	wantString(t, "penalty_team", seg.PenaltyTeam, "SEA")
	wantString(t, "penalty_player", seg.PenaltyPlayer, "J.Smith")
	wantString(t, "penalty_description", seg.PenaltyDescription, "False Start,")
	wantBool(t, "penalty_accepted", seg.PenaltyAccepted, true)
	wantInt(t, "penalty_yards", seg.PenaltyYards, 5)
	wantYardline(t, "penalty_yardline", seg.PenaltyYardline, TeamYardline("SEA", 20))
}

func TestParse_PenaltyVariants(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		seg := mustSegments(t, "PENALTY on NE-T.Brady Intentional Grounding declined.", 1)[0]
		wantString(t, "penalty_player", seg.PenaltyPlayer, "T.Brady")
		wantString(t, "penalty_description", seg.PenaltyDescription, "Intentional Grounding")
		wantBool(t, "penalty_accepted", seg.PenaltyAccepted, false)
	})
	t.Run("offsetting team", func(t *testing.T) {
		seg := mustSegments(t, "Penalty on NE Offensive Holding offsetting.", 1)[0]
		wantType(t, seg, TypePenalty)
		wantString(t, "penalty_team", seg.PenaltyTeam, "NE")
		wantString(t, "penalty_player", seg.PenaltyPlayer, "NA")
		wantString(t, "notes", seg.Notes, "OFFSET")
		if !seg.NoPlay {
			t.Error("offsetting penalties should be no play")
		}
	})
	t.Run("superseded", func(t *testing.T) {
		seg := mustSegments(t, "PENALTY on DEN-E.Dumervil Defensive Offside superseded.", 1)[0]
		wantBool(t, "penalty_accepted", seg.PenaltyAccepted, false)
		wantString(t, "notes", seg.Notes, "SUPERSEDED")
	})
	t.Run("no play", func(t *testing.T) {
		seg := mustSegments(t, "PENALTY on SEA-J.Smith False Start 5 yards enforced at SEA 20 - No Play.", 1)[0]
		wantInt(t, "penalty_yards", seg.PenaltyYards, 5)
		if !seg.NoPlay {
			t.Error("noplay should be set")
		}
	})
	t.Run("between downs", func(t *testing.T) {
		seg := mustSegments(t, "PENALTY on SEA-J.Smith Unsportsmanlike Conduct 15 yards enforced between downs.", 1)[0]
		wantString(t, "penalty_description", seg.PenaltyDescription, "Unsportsmanlike Conduct")
		wantString(t, "notes", seg.Notes, "ENFORCED_BETWEEN_DOWNS")
		if seg.PenaltyYardline != nil {
			t.Errorf("penalty_yardline = %v, want absent", seg.PenaltyYardline)
		}
	})
	t.Run("commentary", func(t *testing.T) {
		seg := mustSegments(t, "Penalty flags were thrown.", 1)[0]
		wantType(t, seg, TypeNull)
	})
}

func TestParse_NullPlays(t *testing.T) {
	for _, input := range []string{"", "   ", "*** play under review ***", "<td align=center>&nbsp;</td>"} {
		t.Run(input, func(t *testing.T) {
			desc := Parse(input)
			if desc.IsError {
				t.Fatalf("unexpected error: %s", desc.Err())
			}
			if len(desc.Segments) != 1 || desc.Segments[0].Type != TypeNoDescription {
				t.Errorf("Parse(%q) = %v, want one NO_DESCRIPTION segment", input, desc)
			}
		})
	}
}

func TestParse_Pass(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		seg := mustSegments(t, "(3:02) T.Brady pass short right to R.Gronkowski to NE 40 for 12 yards (J.Smith).", 1)[0]
		wantType(t, seg, TypePass)
		wantString(t, "primary_name", seg.PrimaryName, "T.Brady")
		wantString(t, "pass_target", seg.PassTarget, "R.Gronkowski")
		wantBool(t, "pass_complete", seg.PassComplete, true)
		wantYardline(t, "end_yardline", seg.EndYardline, TeamYardline("NE", 40))
	})
	t.Run("incomplete", func(t *testing.T) {
		seg := mustSegments(t, "(:45) T.Brady pass incomplete to R.Moss.", 1)[0]
		wantType(t, seg, TypePass)
		wantBool(t, "pass_complete", seg.PassComplete, false)
		wantBool(t, "pass_intercepted", seg.PassIntercepted, false)
		wantString(t, "pass_target", seg.PassTarget, "R.Moss")
	})
	t.Run("intercepted with return", func(t *testing.T) {
		segs := mustSegments(t, "T.Brady pass intended for R.Moss INTERCEPTED by E.Reed at BLT 10. E.Reed to BLT 35 for 25 yards.", 2)
		wantType(t, segs[0], TypePass)
		wantString(t, "pass_target", segs[0].PassTarget, "R.Moss")
		wantString(t, "pass_interceptor", segs[0].PassInterceptor, "E.Reed")
		wantString(t, "turnover_type", segs[0].TurnoverType, "INTERCEPTION")
		wantYardline(t, "end_yardline", segs[0].EndYardline, TeamYardline("BLT", 10))
		if !segs[0].Turnover {
			t.Error("interception should be a turnover")
		}
		wantType(t, segs[1], TypeRun)
		wantString(t, "primary_name", segs[1].PrimaryName, "E.Reed")
		wantYardline(t, "end_yardline", segs[1].EndYardline, TeamYardline("BLT", 35))
	})
	t.Run("intercepted directly", func(t *testing.T) {
		seg := mustSegments(t, "T.Brady pass INTERCEPTED by E.Reed at BLT 10.", 1)[0]
		wantString(t, "pass_interceptor", seg.PassInterceptor, "E.Reed")
		wantBool(t, "pass_intercepted", seg.PassIntercepted, true)
	})
	t.Run("spiked", func(t *testing.T) {
		seg := mustSegments(t, "T.Brady spiked the ball to stop the clock.", 1)[0]
		wantType(t, seg, TypePass)
		wantString(t, "notes", seg.Notes, "SPIKED")
		wantBool(t, "pass_complete", seg.PassComplete, false)
	})
}

func TestParse_EndYardage(t *testing.T) {
	t.Run("run without yardline becomes null", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith kneels.", 1)[0]
		wantType(t, seg, TypeNull)
		wantString(t, "primary_name", seg.PrimaryName, "J.Smith")
	})
	t.Run("sack without yardline stays sack", func(t *testing.T) {
		seg := mustSegments(t, "B.Roethlisberger sacked.", 1)[0]
		wantType(t, seg, TypeSack)
		if seg.EndYardline != nil {
			t.Errorf("end_yardline = %v, want absent", seg.EndYardline)
		}
	})
	t.Run("sack", func(t *testing.T) {
		seg := mustSegments(t, "B.Roethlisberger sacked at PIT 35 for -7 yards (J.Harrison).", 1)[0]
		wantType(t, seg, TypeSack)
		wantYardline(t, "end_yardline", seg.EndYardline, TeamYardline("PIT", 35))
	})
	t.Run("touchdown", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith up the middle for 3 yards, TOUCHDOWN.", 1)[0]
		wantType(t, seg, TypeRun)
		wantYardline(t, "end_yardline", seg.EndYardline, EndZone)
		wantString(t, "end_zone_result", seg.EndZoneResult, Touchdown)
	})
	t.Run("safety", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith tackled in end zone for -2 yards, SAFETY.", 1)[0]
		wantString(t, "end_zone_result", seg.EndZoneResult, Safety)
	})
	t.Run("midfield", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith left end to 50 for 5 yards.", 1)[0]
		wantYardline(t, "end_yardline", seg.EndYardline, Midfield)
	})
	t.Run("touchback as run", func(t *testing.T) {
		seg := mustSegments(t, "E.Royal Touchback.", 1)[0]
		wantType(t, seg, TypeRun)
		wantString(t, "end_zone_result", seg.EndZoneResult, Touchback)
	})
}

func TestParse_Kicks(t *testing.T) {
	t.Run("kickoff and return", func(t *testing.T) {
		segs := mustSegments(t, "S.Janikowski kicks 70 yards from OAK 30 to DEN 0. E.Royal to DEN 25 for 25 yards (J.Smith).", 2)
		wantType(t, segs[0], TypeKickoff)
		wantInt(t, "yardage", segs[0].Yardage, 70)
		wantType(t, segs[1], TypeRun)
		wantString(t, "primary_name", segs[1].PrimaryName, "E.Royal")
		wantYardline(t, "end_yardline", segs[1].EndYardline, TeamYardline("DEN", 25))
	})
	t.Run("kickoff touchback", func(t *testing.T) {
		seg := mustSegments(t, "S.Janikowski kicks 65 yards from OAK 35 to end zone, Touchback.", 1)[0]
		wantType(t, seg, TypeKickoff)
		wantString(t, "end_zone_result", seg.EndZoneResult, Touchback)
	})
	t.Run("punt fair catch", func(t *testing.T) {
		seg := mustSegments(t, "B.Lechler punts 45 yards to DEN 20, fair catch by E.Royal.", 1)[0]
		wantType(t, seg, TypePunt)
		wantInt(t, "yardage", seg.Yardage, 45)
		wantString(t, "returner", seg.Returner, "E.Royal")
	})
	t.Run("punt downed", func(t *testing.T) {
		seg := mustSegments(t, "B.Lechler punts 45 yards to DEN 5, downed by OAK-J.Smith.", 1)[0]
		wantType(t, seg, TypePunt)
		if seg.Returner != nil {
			t.Errorf("returner = %v, want absent", *seg.Returner)
		}
	})
	t.Run("blocked punt recovered", func(t *testing.T) {
		seg := mustSegments(t, "B.Lechler punt is BLOCKED by J.Smith recovered by SEA-K.Jones at OAK 20.", 1)[0]
		wantType(t, seg, TypePunt)
		wantBool(t, "kick_blocked", seg.KickBlocked, true)
		wantString(t, "recover_team", seg.RecoverTeam, "SEA")
		wantString(t, "recover_player", seg.RecoverPlayer, "K.Jones")
		wantYardline(t, "recover_yardline", seg.RecoverYardline, TeamYardline("OAK", 20))
	})
	t.Run("blocked punt safety", func(t *testing.T) {
		seg := mustSegments(t, "B.Lechler punt is BLOCKED by J.Smith declared dead in end zone.", 1)[0]
		wantBool(t, "kick_blocked", seg.KickBlocked, true)
		wantBool(t, "safety", seg.Safety, true)
	})
}

func TestParse_FieldGoals(t *testing.T) {
	tests := []struct {
		input string
		typ   SegmentType
		made  bool
	}{
		{"M.Prater 45 yard field goal is GOOD.", TypeFieldGoal, true},
		{"M.Prater 52 yard field goal is No Good.", TypeFieldGoal, false},
		{"M.Prater extra point is GOOD.", TypeExtraPoint, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seg := mustSegments(t, tt.input, 1)[0]
			wantType(t, seg, tt.typ)
			wantBool(t, "field_goal_made", seg.FieldGoalMade, tt.made)
		})
	}

	seg := mustSegments(t, "M.Prater 45 yard field goal is GOOD.", 1)[0]
	wantInt(t, "yardage", seg.Yardage, 45)

	blocked := mustSegments(t, "M.Prater 45 yard field goal is BLOCKED by J.Smith.", 1)[0]
	wantBool(t, "kick_blocked", blocked.KickBlocked, true)
	wantBool(t, "field_goal_made", blocked.FieldGoalMade, false)
}

func TestParse_Fumbles(t *testing.T) {
	t.Run("forced and recovered", func(t *testing.T) {
		segs := mustSegments(t, "J.Smith up the middle to SEA 40 for 3 yards. J.Smith FUMBLES (K.Jones) at SEA 40 recovered by SF-P.Willis at SEA 38.", 2)
		wantType(t, segs[0], TypeRun)
		seg := segs[1]
		wantType(t, seg, TypeFumble)
		wantString(t, "fumble_forced_by", seg.FumbleForcedBy, "K.Jones")
		wantYardline(t, "fumble_yardline", seg.FumbleYardline, TeamYardline("SEA", 40))
		wantString(t, "recover_team", seg.RecoverTeam, "SF")
		wantString(t, "recover_player", seg.RecoverPlayer, "P.Willis")
		wantYardline(t, "recover_yardline", seg.RecoverYardline, TeamYardline("SEA", 38))
	})
	t.Run("forced by two players", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith FUMBLES (K.Jones A.Davis) recovered by SF at SEA 38.", 1)[0]
		wantString(t, "fumble_forced_by", seg.FumbleForcedBy, "K.Jones;A.Davis")
		wantString(t, "recover_player", seg.RecoverPlayer, "TEAM")
	})
	t.Run("aborted snap recovered by fumbler", func(t *testing.T) {
		seg := mustSegments(t, "R.Grossman FUMBLES (Aborted) at CHI 30 and recovers at CHI 28.", 1)[0]
		wantString(t, "fumble_forced_by", seg.FumbleForcedBy, "ABORTED_SNAP")
		wantYardline(t, "fumble_yardline", seg.FumbleYardline, TeamYardline("CHI", 30))
		wantYardline(t, "recover_yardline", seg.RecoverYardline, TeamYardline("CHI", 28))
		wantString(t, "recover_team", seg.RecoverTeam, "LAST_TEAM")
		wantString(t, "recover_player", seg.RecoverPlayer, "R.Grossman")
		if seg.Turnover {
			t.Error("recovering own fumble is not a turnover")
		}
	})
	t.Run("out of bounds", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith FUMBLES ball out of bounds at SEA 30.", 1)[0]
		wantString(t, "notes", seg.Notes, "BALL_OB")
		wantYardline(t, "end_yardline", seg.EndYardline, TeamYardline("SEA", 30))
	})
	t.Run("out of bounds in end zone", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith FUMBLES (Team) ball out of bounds in End Zone SAFETY.", 1)[0]
		wantString(t, "fumble_forced_by", seg.FumbleForcedBy, "TEAM")
		wantString(t, "end_zone_result", seg.EndZoneResult, Safety)
	})
	t.Run("declared dead", func(t *testing.T) {
		seg := mustSegments(t, "J.Smith FUMBLES declared dead at SEA 12.", 1)[0]
		wantYardline(t, "end_yardline", seg.EndYardline, TeamYardline("SEA", 12))
	})
	t.Run("muffed catch", func(t *testing.T) {
		seg := mustSegments(t, "E.Royal muffs catch at DEN 10 recovered by OAK-J.Smith at DEN 8.", 1)[0]
		wantType(t, seg, TypeFumble)
		wantYardline(t, "fumble_yardline", seg.FumbleYardline, TeamYardline("DEN", 10))
		wantString(t, "recover_team", seg.RecoverTeam, "OAK")
	})
	t.Run("bare fumbles sentence", func(t *testing.T) {
		segs := mustSegments(t, "J.Smith to SEA 40 for 2 yards. FUMBLES at SEA 40 recovered by SF-P.Willis at SEA 39.", 2)
		wantType(t, segs[1], TypeFumble)
		if segs[1].PrimaryName != nil {
			t.Errorf("primary_name = %q, want absent", *segs[1].PrimaryName)
		}
	})
}

func TestParse_Recovery(t *testing.T) {
	segs := mustSegments(t, "S.Janikowski kicks onside 12 yards from OAK 30 to OAK 42. RECOVERED by OAK-J.Smith.", 2)
	wantType(t, segs[0], TypeKickoff)
	wantType(t, segs[1], TypeRecovery)
	wantString(t, "recover_team", segs[1].RecoverTeam, "OAK")
	wantString(t, "recover_player", segs[1].RecoverPlayer, "J.Smith")

	null := mustSegments(t, "J.Smith to SEA 40 for 2 yards. RECOVERED by the kicking team.", 2)[1]
	wantType(t, null, TypeNull)
}

func TestParse_ReportIn(t *testing.T) {
	seg := mustSegments(t, "J.Smith reported in as eligible.", 1)[0]
	wantType(t, seg, TypeReportIn)

	joint := mustSegments(t, "J.Smith and K.Jones reported in as eligible.", 1)[0]
	wantString(t, "primary_name", joint.PrimaryName, "J.Smith;K.Jones")
}

func TestParse_Lateral(t *testing.T) {
	segs := mustSegments(t, "J.Smith to SEA 45 for 5 yards. Lateral to K.Jones to SEA 30 for 15 yards.", 2)
	wantType(t, segs[1], TypeLateral)
	wantString(t, "primary_name", segs[1].PrimaryName, "K.Jones")
	wantYardline(t, "end_yardline", segs[1].EndYardline, TeamYardline("SEA", 30))

	ignored := mustSegments(t, "J.Smith to SEA 45 for 5 yards. Lateral to K.Jones for 5 yards.", 2)[1]
	wantType(t, ignored, TypeNull)
}

func TestParse_TwoPointConversion(t *testing.T) {
	run := mustSegments(t, "TWO-POINT CONVERSION ATTEMPT. J.Smith rushes to the right end. ATTEMPT SUCCEEDS.", 1)[0]
	wantType(t, run, TypeTwoPoint)
	wantString(t, "primary_name", run.PrimaryName, "J.Smith")
	wantString(t, "attempt_type", run.AttemptType, "RUN")
	wantBool(t, "attempt_success", run.AttemptSuccess, true)

	pass := mustSegments(t, "TWO-POINT CONVERSION ATTEMPT. T.Brady pass to R.Gronkowski is incomplete. ATTEMPT FAILS.", 1)[0]
	wantString(t, "attempt_type", pass.AttemptType, "PASS")
	wantString(t, "pass_target", pass.PassTarget, "R.Gronkowski")
	wantBool(t, "pass_complete", pass.PassComplete, false)
	wantBool(t, "attempt_success", pass.AttemptSuccess, false)
}

func TestParse_Challenge(t *testing.T) {
	segs := mustSegments(t, "J.Smith runs to SEA 45 for 12 yards. The Replay Assistant challenged the runner was down ruling, and the play was Upheld.", 2)
	wantType(t, segs[1], TypeChallenge)
	wantBool(t, "reversed", segs[1].Reversed, false)

	rev := mustSegments(t, "J.Smith runs to SEA 45. SEA challenged the pass completion ruling by SEA and REVERSED.", 2)[1]
	wantType(t, rev, TypeChallenge)
	wantBool(t, "reversed", rev.Reversed, true)

	none := mustSegments(t, "J.Smith runs to SEA 45. Timeout #1 by SEA at 12:34.", 2)[1]
	wantType(t, none, TypeNull)

	vague := mustSegments(t, "J.Smith runs to SEA 45. SEA challenged the ruling.", 2)[1]
	wantType(t, vague, TypeNull)
}

func TestParse_LeadingJunk(t *testing.T) {
	seg := mustSegments(t, "Junk text. J.Smith runs to SEA 45.", 1)[0]
	wantType(t, seg, TypeRun)
	wantString(t, "primary_name", seg.PrimaryName, "J.Smith")

	formation := mustSegments(t, "(Shotgun) T.Brady pass incomplete to R.Moss.", 1)[0]
	wantType(t, formation, TypePass)
}

func TestParse_TrailingAnnotation(t *testing.T) {
	seg := mustSegments(t, "J.Smith runs to NE 20. (Note here)", 1)[0]
	wantType(t, seg, TypeRun)
	wantYardline(t, "end_yardline", seg.EndYardline, TeamYardline("NE", 20))

	tests := []string{"(12:34)", "Junk text."}
	for _, play := range tests {
		t.Run(play, func(t *testing.T) {
			seg := mustSegments(t, play, 1)[0]
			wantType(t, seg, TypeNull)
		})
	}
}

func TestParse_HyphenatedName(t *testing.T) {
	seg := mustSegments(t, "J.Smith-Jones runs to SEA 45 for 12 yards.", 1)[0]
	wantType(t, seg, TypeRun)
	wantString(t, "primary_name", seg.PrimaryName, "J.Smith-_Jones")

	pass := mustSegments(t, "T.Brady pass incomplete to B.Green-Ellis.", 1)[0]
	wantString(t, "pass_target", pass.PassTarget, "B.Green-_Ellis")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		notes string
	}{
		{"(12:3) J.Smith runs.", "EXCEPTION: expected time, got nonconforming input, in acquiring_time"},
		{"J.Smith pass short right", "EXCEPTION: premature end of string in process_pass"},
		{"M.Prater 45 yard field goal is wide.", "EXCEPTION: unrecognized field goal result wide, in process_field_goal"},
		{"(Shotgun", "EXCEPTION: premature end of string in skip_outer_annotation"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			desc := Parse(tt.input)
			if !desc.IsError {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, desc)
			}
			if len(desc.Segments) != 1 || desc.Segments[0].Type != TypeError {
				t.Fatalf("want a single ERROR segment, got %v", desc)
			}
			if got := desc.Err(); got != tt.notes {
				t.Errorf("notes = %q, want %q", got, tt.notes)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"(12:34) J.Smith runs to SEA 45 for 12 yards.",
		"T.Brady pass intended for R.Moss INTERCEPTED by E.Reed at BLT 10. E.Reed to BLT 35 for 25 yards.",
		"J.Smith pass short right",
	}
	for _, input := range inputs {
		first, second := Parse(input), Parse(input)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Parse(%q) is not repeatable:\n%v\n%v", input, first, second)
		}
	}
}

func TestMachine_Configuration(t *testing.T) {
	if _, err := NewMachine(StateInitial); !errors.Is(err, ErrNoEndStates) {
		t.Errorf("NewMachine() error = %v, want ErrNoEndStates", err)
	}
	if _, err := NewMachine(StateParseComplete, StateParseComplete); err == nil {
		t.Error("an end state cannot be the initial state")
	}
	if _, err := NewMachine(StateInitial, StateParseComplete); err != nil {
		t.Errorf("NewMachine() error = %v", err)
	}
}

func TestMachine_PrematureEndIsAttributed(t *testing.T) {
	_, err := defaultMachine.ParseTokens(Tokenize("J.Smith pass short"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.State != StateProcessPass {
		t.Errorf("State = %v, want %v", pe.State, StateProcessPass)
	}
	if !errors.Is(err, ErrPrematureEnd) {
		t.Error("error should wrap ErrPrematureEnd")
	}
}

func TestSegment_Get(t *testing.T) {
	seg := mustSegments(t, "(12:34) J.Smith runs to SEA 45 for 12 yards.", 1)[0]

	if v, ok := seg.Get("primary_name"); !ok || v != "J.Smith" {
		t.Errorf("Get(primary_name) = %v, %v", v, ok)
	}
	if v, ok := seg.Get("end_yardline"); !ok || v != TeamYardline("SEA", 45) {
		t.Errorf("Get(end_yardline) = %v, %v", v, ok)
	}
	if _, ok := seg.Get("pass_target"); ok {
		t.Error("pass_target should be absent on a run")
	}
	if _, ok := seg.Get("no_such_key"); ok {
		t.Error("unknown keys are absent")
	}
	if v, ok := seg.Get("turnover"); !ok || v != false {
		t.Errorf("Get(turnover) = %v, %v", v, ok)
	}

	s := seg.String()
	for _, want := range []string{"type=RUN", "primary_name=J.Smith", "end_yardline=('SEA', 45)", "done=True"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
